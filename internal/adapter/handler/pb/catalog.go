// Package pb declares the factory.v1.CatalogService gRPC contract. Messages
// are plain structs carried by the JSON codec in codec.go.
package pb

type Product struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

func (x *Product) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Product) GetPrice() string {
	if x != nil {
		return x.Price
	}
	return ""
}

func (x *Product) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type CreateProductRequest struct {
	Variant string `json:"variant"`
}

func (x *CreateProductRequest) GetVariant() string {
	if x != nil {
		return x.Variant
	}
	return ""
}

// BuildProductRequest fields are optional; unset fields are not applied.
type BuildProductRequest struct {
	Name        *string `json:"name,omitempty"`
	Price       *string `json:"price,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CloneProductRequest struct {
	Product *Product `json:"product"`
}

func (x *CloneProductRequest) GetProduct() *Product {
	if x != nil {
		return x.Product
	}
	return nil
}

type RegisterProductRequest struct {
	Product *Product `json:"product"`
}

func (x *RegisterProductRequest) GetProduct() *Product {
	if x != nil {
		return x.Product
	}
	return nil
}

type ProductResponse struct {
	Product *Product `json:"product"`
}

func (x *ProductResponse) GetProduct() *Product {
	if x != nil {
		return x.Product
	}
	return nil
}

type RegisterProductResponse struct {
	Message string `json:"message"`
}

func (x *RegisterProductResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type ListVariantsRequest struct{}

type Variant struct {
	Name    string   `json:"name"`
	Family  string   `json:"family"`
	Product *Product `json:"product"`
}

type ListVariantsResponse struct {
	Variants []*Variant `json:"variants"`
}

func (x *ListVariantsResponse) GetVariants() []*Variant {
	if x != nil {
		return x.Variants
	}
	return nil
}
