package models

// Product representa una fila de la tabla products
type Product struct {
	ProductID   int     `json:"ProductID" bson:"ProductID" gorm:"column:ProductID;primaryKey"`
	Name        string  `json:"Name" bson:"Name" gorm:"column:Name;index"`
	Brand       string  `json:"Brand" bson:"Brand" gorm:"column:Brand"`
	Price       float64 `json:"Price" bson:"Price" gorm:"column:Price"`
	Category    string  `json:"Category" bson:"Category" gorm:"column:Category"`
	Description string  `json:"Description" bson:"Description" gorm:"column:Description;type:text"`
	SupplierID  int     `json:"SupplierID" bson:"SupplierID" gorm:"column:SupplierID"`
}

func (Product) TableName() string {
	return "products"
}
