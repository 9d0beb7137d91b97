package resource

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"ventas-admin/internal/common/pagination"
	"ventas-admin/internal/domain/entity"
	"ventas-admin/internal/infra/api"
)

// Collection is a Resource with its item type erased, for commands that
// handle every collection the same way.
type Collection interface {
	Name() string
	Path() string
	Headers() []string
	List(ctx context.Context, params pagination.Params) (Listing, error)
	Export(ctx context.Context, limit, parallelism int) (Listing, error)
	Describe(ctx context.Context, id int64) (Listing, error)
	Delete(ctx context.Context, id int64) error
}

// Listing is a result ready for output. Items holds the typed value for
// JSON and YAML; Rows holds the same data rendered for a table.
type Listing struct {
	Headers []string
	Rows    [][]string
	Items   any
	Meta    *pagination.Metadata
}

// List fetches one page and normalizes its metadata.
func (r *Resource[T]) List(ctx context.Context, params pagination.Params) (Listing, error) {
	page, err := r.Fetch(ctx, params)
	if err != nil {
		return Listing{}, err
	}
	result := pagination.NewResult(page, params.Limit)
	if page.Source.Page == nil {
		result.Page = params.Page
	}
	return Listing{
		Headers: r.Headers(),
		Rows:    r.Rows(result.Data),
		Items:   result,
		Meta:    &result.Metadata,
	}, nil
}

// Export returns the whole collection.
func (r *Resource[T]) Export(ctx context.Context, limit, parallelism int) (Listing, error) {
	items, err := r.ExportAll(ctx, limit, parallelism)
	if err != nil {
		return Listing{}, err
	}
	return Listing{Headers: r.Headers(), Rows: r.Rows(items), Items: items}, nil
}

// Describe returns one item.
func (r *Resource[T]) Describe(ctx context.Context, id int64) (Listing, error) {
	item, err := r.Get(ctx, id)
	if err != nil {
		return Listing{}, err
	}
	return Listing{Headers: r.Headers(), Rows: r.Rows([]T{item}), Items: item}, nil
}

// Catalog holds every collection of the backend.
type Catalog struct {
	Sellers   *Resource[entity.Seller]
	Products  *Resource[entity.Product]
	Suppliers *Resource[entity.Supplier]
	Plans     *Resource[entity.SalesPlan]
	Shipments *Resource[entity.Shipment]
}

// NewCatalog binds every collection to client.
func NewCatalog(client *api.Client) *Catalog {
	return &Catalog{
		Sellers:   New(client, "vendedores", "/vendedores", sellerColumns...),
		Products:  New(client, "productos", "/productos", productColumns...),
		Suppliers: New(client, "proveedores", "/proveedores", supplierColumns...),
		Plans:     New(client, "planes-venta", "/planes-venta", planColumns...),
		Shipments: New(client, "logistica", "/logistica", shipmentColumns...),
	}
}

// Collections returns the collections keyed by name.
func (c *Catalog) Collections() map[string]Collection {
	return map[string]Collection{
		c.Sellers.Name():   c.Sellers,
		c.Products.Name():  c.Products,
		c.Suppliers.Name(): c.Suppliers,
		c.Plans.Name():     c.Plans,
		c.Shipments.Name(): c.Shipments,
	}
}

// Names returns the collection names in alphabetical order.
func (c *Catalog) Names() []string {
	all := c.Collections()
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the collection called name.
func (c *Catalog) Lookup(name string) (Collection, error) {
	if col, ok := c.Collections()[name]; ok {
		return col, nil
	}
	return nil, fmt.Errorf("unknown resource %q (known: %v): %w", name, c.Names(), entity.ErrInvalidInput)
}

func idText(v int64) string { return strconv.FormatInt(v, 10) }
func money(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
func yesNo(v bool) string {
	if v {
		return "sí"
	}
	return "no"
}

var sellerColumns = []Column[entity.Seller]{
	{Title: "ID", Width: 6, Value: func(s entity.Seller) string { return idText(s.ID) }},
	{Title: "Nombre", Width: 24, Value: func(s entity.Seller) string { return s.Name }},
	{Title: "Email", Width: 28, Value: func(s entity.Seller) string { return s.Email }},
	{Title: "Zona", Width: 14, Value: func(s entity.Seller) string { return s.Zone }},
	{Title: "Activo", Width: 6, Value: func(s entity.Seller) string { return yesNo(s.Active) }},
}

var productColumns = []Column[entity.Product]{
	{Title: "ID", Width: 6, Value: func(p entity.Product) string { return idText(p.ID) }},
	{Title: "SKU", Width: 12, Value: func(p entity.Product) string { return p.SKU }},
	{Title: "Nombre", Width: 24, Value: func(p entity.Product) string { return p.Name }},
	{Title: "Precio", Width: 10, Value: func(p entity.Product) string { return money(p.Price) }},
	{Title: "Stock", Width: 6, Value: func(p entity.Product) string { return strconv.Itoa(p.Stock) }},
	{Title: "Activo", Width: 6, Value: func(p entity.Product) string { return yesNo(p.Active) }},
}

var supplierColumns = []Column[entity.Supplier]{
	{Title: "ID", Width: 6, Value: func(s entity.Supplier) string { return idText(s.ID) }},
	{Title: "Nombre", Width: 24, Value: func(s entity.Supplier) string { return s.Name }},
	{Title: "CUIT", Width: 14, Value: func(s entity.Supplier) string { return s.CUIT }},
	{Title: "Email", Width: 28, Value: func(s entity.Supplier) string { return s.Email }},
}

var planColumns = []Column[entity.SalesPlan]{
	{Title: "ID", Width: 6, Value: func(p entity.SalesPlan) string { return idText(p.ID) }},
	{Title: "Nombre", Width: 22, Value: func(p entity.SalesPlan) string { return p.Name }},
	{Title: "Vendedor", Width: 8, Value: func(p entity.SalesPlan) string { return idText(p.SellerID) }},
	{Title: "Desde", Width: 10, Value: func(p entity.SalesPlan) string { return p.StartDate }},
	{Title: "Hasta", Width: 10, Value: func(p entity.SalesPlan) string { return p.EndDate }},
	{Title: "Objetivo", Width: 12, Value: func(p entity.SalesPlan) string { return money(p.TargetAmount) }},
	{Title: "Estado", Width: 9, Value: func(p entity.SalesPlan) string { return string(p.Status) }},
}

var shipmentColumns = []Column[entity.Shipment]{
	{Title: "ID", Width: 6, Value: func(s entity.Shipment) string { return idText(s.ID) }},
	{Title: "Pedido", Width: 10, Value: func(s entity.Shipment) string { return s.Order }},
	{Title: "Transportista", Width: 16, Value: func(s entity.Shipment) string { return s.Carrier }},
	{Title: "Estado", Width: 11, Value: func(s entity.Shipment) string { return string(s.Status) }},
	{Title: "Destino", Width: 16, Value: func(s entity.Shipment) string { return s.Destination }},
}
