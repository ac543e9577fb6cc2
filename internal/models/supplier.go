package models

// Supplier representa una fila de la tabla suppliers.
// ProductCategoriesOffered es texto libre (categorías separadas por comas o palabras clave).
type Supplier struct {
	SupplierID               int    `json:"SupplierID" bson:"SupplierID" gorm:"column:SupplierID;primaryKey"`
	Name                     string `json:"Name" bson:"Name" gorm:"column:Name;index"`
	ContactInfo              string `json:"ContactInfo" bson:"ContactInfo" gorm:"column:ContactInfo"`
	ProductCategoriesOffered string `json:"ProductCategoriesOffered" bson:"ProductCategoriesOffered" gorm:"column:ProductCategoriesOffered;type:text"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
