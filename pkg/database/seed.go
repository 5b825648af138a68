package database

import (
	"ouderschapsplan-api/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedLookups inserts the reference rows. Existing ids are left alone, so
// running it twice is harmless.
func SeedLookups(db *gorm.DB) error {
	categorieId := func(id uint) *uint { return &id }

	seeds := []interface{}{
		&[]model.Rol{
			{Id: 1, Naam: "Moeder"},
			{Id: 2, Naam: "Vader"},
			{Id: 3, Naam: "Ouder"},
			{Id: 4, Naam: "Verzorger"},
		},
		&[]model.Dag{
			{Id: 1, Naam: "Maandag", Code: "ma"},
			{Id: 2, Naam: "Dinsdag", Code: "di"},
			{Id: 3, Naam: "Woensdag", Code: "wo"},
			{Id: 4, Naam: "Donderdag", Code: "do"},
			{Id: 5, Naam: "Vrijdag", Code: "vr"},
			{Id: 6, Naam: "Zaterdag", Code: "za"},
			{Id: 7, Naam: "Zondag", Code: "zo"},
		},
		&[]model.Dagdeel{
			{Id: 1, Naam: "Ochtend"},
			{Id: 2, Naam: "Middag"},
			{Id: 3, Naam: "Avond"},
			{Id: 4, Naam: "Nacht"},
		},
		&[]model.WeekRegeling{
			{Id: 1, Omschrijving: "Elke week"},
			{Id: 2, Omschrijving: "Even weken"},
			{Id: 3, Omschrijving: "Oneven weken"},
			{Id: 4, Omschrijving: "Anders"},
		},
		&[]model.ZorgCategorie{
			{Id: 1, Naam: "Feestdagen"},
			{Id: 2, Naam: "Vakanties"},
			{Id: 3, Naam: "Bijzondere dagen"},
			{Id: 4, Naam: "Beslissingen"},
		},
		&[]model.ZorgSituatie{
			{Id: 1, Naam: "Kerstmis", ZorgCategorieId: categorieId(1)},
			{Id: 2, Naam: "Pasen", ZorgCategorieId: categorieId(1)},
			{Id: 3, Naam: "Zomervakantie", ZorgCategorieId: categorieId(2)},
			{Id: 4, Naam: "Kerstvakantie", ZorgCategorieId: categorieId(2)},
			{Id: 5, Naam: "Verjaardag kind", ZorgCategorieId: categorieId(3)},
			{Id: 6, Naam: "Schoolkeuze", ZorgCategorieId: categorieId(4)},
			{Id: 7, Naam: "Anders", ZorgCategorieId: nil},
		},
		&[]model.RelatieType{
			{Id: 1, Naam: "Biologisch"},
			{Id: 2, Naam: "Adoptie"},
			{Id: 3, Naam: "Pleeg"},
			{Id: 4, Naam: "Stief"},
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, rows := range seeds {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
