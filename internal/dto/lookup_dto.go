package dto

type LookupQuery struct {
	ZorgCategorieId *uint  `query:"zorgCategorieId" validate:"omitempty,gt=0"`
	Type            string `query:"type" validate:"omitempty,max=50"`
	Meervoud        *bool  `query:"meervoudKinderen"`
}
