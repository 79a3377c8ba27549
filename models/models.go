package models

// All returns every model in migration-safe order (parents before children).
func All() []interface{} {
	return []interface{}{
		&User{},
		&Politician{},
		&LegalCase{},
		&Promise{},
		&PoliticalLinkage{},
		&FlaggedReport{},
		&ScoreHistory{},
		&NewsMention{},
	}
}
