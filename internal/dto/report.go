package dto

// Report formats
const (
	ReportFormatJSON = "json"
	ReportFormatCSV  = "csv"
	ReportFormatXLSX = "xlsx"
)

// BookingReportRequest booking report query
type BookingReportRequest struct {
	BookingListRequest
	Format string `form:"format" binding:"omitempty,oneof=json csv xlsx"`
}

// AppointmentReportRequest appointment report query
type AppointmentReportRequest struct {
	AppointmentListRequest
	Format string `form:"format" binding:"omitempty,oneof=json csv xlsx"`
}
