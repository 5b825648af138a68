package model

// All lists every table in migration order: lookups first, then owners, then dependents.
func All() []interface{} {
	return []interface{}{
		&Rol{},
		&Dag{},
		&Dagdeel{},
		&WeekRegeling{},
		&ZorgCategorie{},
		&ZorgSituatie{},
		&RelatieType{},
		&Schoolvakantie{},
		&RegelingTemplate{},
		&Gebruiker{},
		&Dossier{},
		&Persoon{},
		&Partij{},
		&DossierKind{},
		&KindOuder{},
		&Omgang{},
		&Zorg{},
		&OuderschapsplanInfo{},
		&Alimentatie{},
		&BijdrageKostenKinderen{},
		&FinancieleAfsprakenKinderen{},
		&Abonnement{},
		&Betaling{},
	}
}
