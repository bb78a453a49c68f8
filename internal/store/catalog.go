// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Entity keys of the store catalog.
const (
	EntityProductBrand   = "ProductBrand"
	EntityProductType    = "ProductType"
	EntityDeliveryMethod = "DeliveryMethod"
	EntityProduct        = "Product"
	EntityOrder          = "Order"
)

// CatalogSeedOrder lists the catalog entities in foreign-key order.
var CatalogSeedOrder = []string{
	EntityProductBrand,
	EntityProductType,
	EntityDeliveryMethod,
	EntityProduct,
}

// NewCatalogRegistry returns a [Registry] holding the store's tables, all
// qualified by schema. The table layout matches the embedded migrations.
func NewCatalogRegistry(schema string) *Registry {
	r := NewRegistry()

	r.MustRegister(EntityProductBrand, TableDescriptor{
		Schema:    schema,
		Name:      "product_brands",
		KeyColumn: "id",
		Columns:   []string{"id", "name"},
	})
	r.MustRegister(EntityProductType, TableDescriptor{
		Schema:    schema,
		Name:      "product_types",
		KeyColumn: "id",
		Columns:   []string{"id", "name"},
	})
	r.MustRegister(EntityDeliveryMethod, TableDescriptor{
		Schema:    schema,
		Name:      "delivery_methods",
		KeyColumn: "id",
		Columns:   []string{"id", "short_name", "delivery_time", "description", "price"},
	})
	r.MustRegister(EntityProduct, TableDescriptor{
		Schema:    schema,
		Name:      "products",
		KeyColumn: "id",
		Columns:   []string{"id", "name", "description", "price", "picture_url", "product_type_id", "product_brand_id"},
	})
	r.MustRegister(EntityOrder, TableDescriptor{
		Schema:    schema,
		Name:      "orders",
		KeyColumn: "id",
		Columns:   []string{"id", "buyer_email", "order_date", "subtotal", "status", "delivery_method_id"},
	})

	return r
}
