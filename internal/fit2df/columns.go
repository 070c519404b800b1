package fit2df

import "fitframes/internal/table"

// Point table columns.
const (
	ColLatitude         = "latitude"
	ColLongitude        = "longitude"
	ColLap              = "lap"
	ColTimestamp        = "timestamp"
	ColAltitude         = "altitude"
	ColEnhancedAltitude = "enhanced_altitude"
	ColTemperature      = "temperature"
	ColHeartRate        = "heart_rate"
	ColCadence          = "cadence"
	ColSpeed            = "speed"
	ColEnhancedSpeed    = "enhanced_speed"
	ColPower            = "power"
)

// Lap table columns.
const (
	ColNumber           = "number"
	ColStartTime        = "start_time"
	ColTotalDistance    = "total_distance"
	ColTotalElapsedTime = "total_elapsed_time"
	ColMaxSpeed         = "max_speed"
	ColMaxHeartRate     = "max_heart_rate"
	ColAvgHeartRate     = "avg_heart_rate"
)

// Raw semicircle position fields on record frames.
const (
	fieldPositionLat  = "position_lat"
	fieldPositionLong = "position_long"
)

// semicirclesPerDegree converts FIT semicircles (2^32 per full circle) to degrees.
const semicirclesPerDegree = (1 << 32) / 360.0

// PointSchema is the fixed point table layout.
var PointSchema = table.Schema{
	Columns: []table.Column{
		{Name: ColLatitude, Type: table.Float64},
		{Name: ColLongitude, Type: table.Float64},
		{Name: ColLap, Type: table.Int64},
		{Name: ColTimestamp, Type: table.Timestamp},
		{Name: ColAltitude, Type: table.Float64},
		{Name: ColEnhancedAltitude, Type: table.Float64},
		{Name: ColTemperature, Type: table.Float64},
		{Name: ColHeartRate, Type: table.Float64},
		{Name: ColCadence, Type: table.Float64},
		{Name: ColSpeed, Type: table.Float64},
		{Name: ColEnhancedSpeed, Type: table.Float64},
		{Name: ColPower, Type: table.Float64},
	},
}

// LapSchema is the fixed lap table layout, keyed by lap number.
var LapSchema = table.Schema{
	Columns: []table.Column{
		{Name: ColNumber, Type: table.Int64},
		{Name: ColStartTime, Type: table.Timestamp},
		{Name: ColTotalDistance, Type: table.Float64},
		{Name: ColTotalElapsedTime, Type: table.Float64},
		{Name: ColMaxSpeed, Type: table.Float64},
		{Name: ColMaxHeartRate, Type: table.Float64},
		{Name: ColAvgHeartRate, Type: table.Float64},
	},
	Key: ColNumber,
}

// PointColumns returns the point table column names in order.
func PointColumns() []string { return PointSchema.Names() }

// LapColumns returns the lap table column names in order.
func LapColumns() []string { return LapSchema.Names() }

// copied point fields: everything after latitude, longitude and lap.
var pointFields = PointColumns()[3:]

// copied lap fields: everything after number.
var lapFields = LapColumns()[1:]
