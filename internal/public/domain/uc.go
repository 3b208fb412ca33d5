package domain

// Avaliacao is one evaluation moment of a UC.
type Avaliacao struct {
	Data      string `json:"data"`
	Descricao string `json:"descricao"`
}

// UC represents a course unit as published in the static dataset.
type UC struct {
	Nome       string      `json:"nome"`
	Slug       string      `json:"slug"`
	Sigla      string      `json:"sigla"`
	Perfil     string      `json:"perfil"`
	Avaliacoes []Avaliacao `json:"avaliacoes"`
	Criterios  string      `json:"criterios"`
	Notas      string      `json:"notas,omitempty"`
	Recursos   []string    `json:"recursos"`
	Docentes   []string    `json:"docentes"`
}

// UCSummary is the decoded form of one /api/dates entry.
type UCSummary struct {
	Nome       string      `json:"nome"`
	Perfil     string      `json:"perfil"`
	Sigla      string      `json:"sigla"`
	Avaliacoes []Avaliacao `json:"avaliacoes"`
}
