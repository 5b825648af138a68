package dto

// DossierParams binds the :dossierId path segment.
type DossierParams struct {
	DossierId uint `params:"dossierId" validate:"required,gt=0"`
}

const DateLayout = "2006-01-02"
