package enum

// SupplierType categorizes a supplier.
type SupplierType string

const (
	SupplierTypeDistributor SupplierType = "distributor"
	SupplierTypeWholesaler  SupplierType = "wholesaler"
	SupplierTypeProducer    SupplierType = "producer"
)
