package mockapi

import (
	"fmt"
	"time"

	"ventas-admin/internal/domain/entity"
)

// Seed sizes. They are chosen so that no collection fills its last page at
// the default limit of 10.
const (
	SeedSellers   = 23
	SeedProducts  = 57
	SeedSuppliers = 12
	SeedPlans     = 31
	SeedShipments = 18
)

var (
	firstNames = []string{"Lucía", "Martín", "Sofía", "Juan", "Valentina", "Diego", "Camila", "Nicolás", "Julieta", "Tomás", "Florencia", "Agustín"}
	lastNames  = []string{"Fernández", "González", "Rodríguez", "López", "Martínez", "Pérez", "Gómez", "Díaz", "Sánchez", "Romero", "Sosa", "Álvarez"}
	zones      = []string{"Norte", "Sur", "Centro", "Oeste", "Litoral", "Cuyo"}
	products   = []string{"Yerba", "Café", "Azúcar", "Harina", "Aceite", "Arroz", "Fideos", "Galletitas", "Dulce de leche", "Mate cocido"}
	cities     = []string{"Buenos Aires", "Rosario", "Córdoba", "Mendoza", "La Plata", "Mar del Plata", "Salta", "Neuquén"}
	carriers   = []string{"Andreani", "OCA", "Correo Argentino", "Vía Cargo"}
)

func seed(collections map[string]*collection) {
	insertAll(collections["vendedores"], SeedSellers, func(i int) any {
		first, last := firstNames[i%len(firstNames)], lastNames[(i/len(firstNames)+i)%len(lastNames)]
		return entity.Seller{
			Name:   first + " " + last,
			Email:  fmt.Sprintf("vendedor%02d@ventas.example.com", i+1),
			Phone:  fmt.Sprintf("+54 11 4%03d-%04d", i*7%1000, 1000+i*37%9000),
			Zone:   zones[i%len(zones)],
			Active: i%5 != 4,
		}
	})

	insertAll(collections["proveedores"], SeedSuppliers, func(i int) any {
		prefix := fmt.Sprintf("30%08d", 71000000+i*1357)
		return entity.Supplier{
			Name:    fmt.Sprintf("Distribuidora %s", cities[i%len(cities)]),
			CUIT:    fmt.Sprintf("%s-%s-%d", prefix[:2], prefix[2:], entity.CUITCheckDigit(prefix)),
			Email:   fmt.Sprintf("compras%02d@proveedor.example.com", i+1),
			Address: fmt.Sprintf("Av. Siempre Viva %d, %s", 100+i*10, cities[i%len(cities)]),
		}
	})

	insertAll(collections["productos"], SeedProducts, func(i int) any {
		name := products[i%len(products)]
		return entity.Product{
			SKU:        fmt.Sprintf("SKU-%04d", i+1),
			Name:       fmt.Sprintf("%s %dg", name, 250*(1+i%4)),
			Price:      float64(500+(i*137)%4500) + 0.5,
			Stock:      (i * 13) % 120,
			SupplierID: int64(1 + i%SeedSuppliers),
			Active:     i%9 != 8,
		}
	})

	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	states := []entity.PlanStatus{entity.PlanDraft, entity.PlanActive, entity.PlanClosed}
	insertAll(collections["planes-venta"], SeedPlans, func(i int) any {
		from := start.AddDate(0, i%12, 0)
		return entity.SalesPlan{
			Name:         fmt.Sprintf("Plan %s %d", from.Format("01/2006"), i+1),
			SellerID:     int64(1 + i%SeedSellers),
			StartDate:    from.Format(entity.DateLayout),
			EndDate:      from.AddDate(0, 3, -1).Format(entity.DateLayout),
			TargetAmount: float64(250000 + i*15000),
			Status:       states[i%len(states)],
		}
	})

	shipStates := []entity.ShipmentStatus{entity.ShipmentPending, entity.ShipmentInTransit, entity.ShipmentDelivered, entity.ShipmentCanceled}
	insertAll(collections["logistica"], SeedShipments, func(i int) any {
		status := shipStates[i%len(shipStates)]
		shipped := start.AddDate(0, 0, i*3)
		s := entity.Shipment{
			Order:       fmt.Sprintf("PED-%05d", 1000+i),
			Carrier:     carriers[i%len(carriers)],
			Status:      status,
			Origin:      cities[i%len(cities)],
			Destination: cities[(i+3)%len(cities)],
		}
		if status != entity.ShipmentPending {
			s.ShippedAt = shipped.Format(entity.DateLayout)
		}
		if status == entity.ShipmentDelivered {
			s.DeliveredAt = shipped.AddDate(0, 0, 2).Format(entity.DateLayout)
		}
		return s
	})
}

func insertAll(c *collection, n int, build func(i int) any) {
	for i := 0; i < n; i++ {
		r, err := toRecord(build(i))
		if err != nil {
			panic(fmt.Sprintf("mockapi: seed record: %v", err))
		}
		c.insert(r)
	}
}
