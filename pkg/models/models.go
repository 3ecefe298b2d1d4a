package models

// Voice представляет голос, предоставляемый движком синтеза речи
type Voice struct {
	Index     int      `json:"index"`     // позиция в списке голосов движка
	ID        string   `json:"id"`        // идентификатор голоса для движка (код языка, имя голоса)
	Name      string   `json:"name"`      // отображаемое имя голоса
	Languages []string `json:"languages"` // языковые теги голоса
}

// SpeechRequest представляет запрос на озвучивание текста
type SpeechRequest struct {
	Text       string `json:"text"`        // текст для озвучивания (пустой допускается)
	Rate       int    `json:"rate"`        // скорость речи, слов в минуту (по умолчанию 150)
	VoiceIndex *int   `json:"voice_index"` // индекс голоса, nil — голос движка по умолчанию
}
