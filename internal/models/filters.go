package models

// TripFilter represents filter parameters for querying trips
type TripFilter struct {
	StartTime   int64  `form:"startTime"`   // Unix timestamp
	EndTime     int64  `form:"endTime"`     // Unix timestamp
	DayOfWeek   string `form:"dayOfWeek"`   // Monday..Sunday
	TimeOfDay   string `form:"timeOfDay"`   // Morning, Midday, Evening, Night
	MinDuration int64  `form:"minDuration"` // Seconds
	MaxDuration int64  `form:"maxDuration"` // Seconds
	UserType    string `form:"userType"`    // MEMBER, CASUAL
	Page        int    `form:"page"`
	PageSize    int    `form:"pageSize"`
}
