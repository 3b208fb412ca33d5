package domain

// ReportAuthor identifies who wrote a feedback report.
type ReportAuthor struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// ReportMetadata is a hand-authored entry in the feedback report index.
type ReportMetadata struct {
	Slug        string       `json:"slug"`
	Title       string       `json:"title"`
	Date        string       `json:"date"`
	Description string       `json:"description"`
	Author      ReportAuthor `json:"author"`
	Warning     string       `json:"warning,omitempty"`
}

var reports = []ReportMetadata{
	{
		Slug:        "form-4year-1sem-1",
		Title:       "Relatório da 1º Recolha de Feedback Intermédio",
		Date:        "2025-10-23",
		Description: "Relatório baseado no formulário da 1ª Recolha de Feedback Intermédio e nas perceções dos representantes dos alunos, para avaliar o progresso e identificar áreas de melhoria.",
		Author: ReportAuthor{
			Name:   "Pedro Pereira",
			Avatar: "https://avatars.githubusercontent.com/u/109802203",
		},
		Warning: "As referências aos dados recolhidos no formulário devem ser interpretadas com ponderação, uma vez que este é totalmente anónimo, não garante a participação de todos os alunos e não controla quem o preenche, pelo que as respostas podem estar condicionadas. Por esta razão, os dados do formulário devem ser considerados como complemento à perceção dos representantes dos alunos.",
	},
}

// Reports returns a copy of the report index.
func Reports() []ReportMetadata {
	return append([]ReportMetadata(nil), reports...)
}

// FindReport looks a report up by slug.
func FindReport(slug string) (ReportMetadata, bool) {
	for _, r := range reports {
		if r.Slug == slug {
			return r, true
		}
	}
	return ReportMetadata{}, false
}
