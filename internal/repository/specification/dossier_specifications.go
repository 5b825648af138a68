package specification

import "gorm.io/gorm"

type ByDossierID struct {
	DossierID uint
}

func (s ByDossierID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("dossier_id = ?", s.DossierID)
}

type ByDossierNummer struct {
	Nummer string
}

func (s ByDossierNummer) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("dossier_nummer = ?", s.Nummer)
}

type ByKindID struct {
	KindID uint
}

func (s ByKindID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("kind_id = ?", s.KindID)
}

type ByOuderID struct {
	OuderID uint
}

func (s ByOuderID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("ouder_id = ?", s.OuderID)
}

type ByPersoonID struct {
	PersoonID uint
}

func (s ByPersoonID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("persoon_id = ?", s.PersoonID)
}

type ByRolID struct {
	RolID uint
}

func (s ByRolID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("rol_id = ?", s.RolID)
}

// OmgangSlot matches the (dag, dagdeel, week regeling) slot of a dossier.
type OmgangSlot struct {
	DagID          uint
	DagdeelID      uint
	WeekRegelingID uint
}

func (s OmgangSlot) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("dag_id = ? AND dagdeel_id = ? AND week_regeling_id = ?", s.DagID, s.DagdeelID, s.WeekRegelingID)
}

type ByWeekRegelingID struct {
	WeekRegelingID uint
}

func (s ByWeekRegelingID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("week_regeling_id = ?", s.WeekRegelingID)
}

type ByZorgCategorieID struct {
	ZorgCategorieID uint
}

func (s ByZorgCategorieID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("zorg_categorie_id = ?", s.ZorgCategorieID)
}

type ByAlimentatieID struct {
	AlimentatieID uint
}

func (s ByAlimentatieID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("alimentatie_id = ?", s.AlimentatieID)
}
