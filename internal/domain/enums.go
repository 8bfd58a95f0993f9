package domain

// DocType discriminates records in the input document stream.
type DocType string

const (
	DocWorkCenter         DocType = "workCenter"
	DocWorkOrder          DocType = "workOrder"
	DocManufacturingOrder DocType = "manufacturingOrder"
)
