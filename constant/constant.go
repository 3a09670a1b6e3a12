package constant

const (
	DEFAULT_SHOWINGS_FILE = "showings.json"
	DEFAULT_SEAT_LOG_FILE = "seat_counts.log"
	DEFAULT_SCHEMA_FILE   = "db/schema.sql"
	DEFAULT_LOG_PATH      = "logs/"
	LOG_FILE_NAME         = "seatrank.log"

	DEFAULT_TOP_N   = 10
	DEFAULT_WORKERS = 4
)
