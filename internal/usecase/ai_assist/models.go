package ai_assist

// Request модель запроса к AI-ассистенту
type Request struct {
	Message string // свободный текст пациента
}

// Response модель ответа AI-ассистента.
//
// Service - одна из услуг клиники или nil, если ассистент не смог
// (или не имел права) ничего предложить. Date и Time - первый доступный
// слот для предложенной услуги, заполняются только вместе с Service.
// Err - диагностика деградации; заполненный Err не мешает показать Reply.
type Response struct {
	Reply   string
	Service *string
	Date    *string
	Time    *string
	Err     *string
}

// aiSuggestion формат JSON-объекта, который модель обязана вернуть
// по условиям системного промпта
type aiSuggestion struct {
	Reply   string  `json:"reply"`
	Service *string `json:"service"`
}
