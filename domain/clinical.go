package domain

// Vital is one vitals reading, in client form.
type Vital struct {
	ID                     string   `json:"id"`
	PatientID              string   `json:"patientId"`
	CycleID                *string  `json:"cycleId,omitempty"`
	RecordedAt             string   `json:"recordedAt"`
	RecordedBy             *string  `json:"recordedBy,omitempty"`
	TemperatureF           *float64 `json:"temperatureF,omitempty"`
	PulseBpm               *int     `json:"pulseBpm,omitempty"`
	BloodPressureSystolic  *int     `json:"bloodPressureSystolic,omitempty"`
	BloodPressureDiastolic *int     `json:"bloodPressureDiastolic,omitempty"`
	RespiratoryRate        *int     `json:"respiratoryRate,omitempty"`
	OxygenSaturation       *int     `json:"oxygenSaturation,omitempty"`
	PainScore              *int     `json:"painScore,omitempty"`
	PainLocation           *string  `json:"painLocation,omitempty"`
	BloodSugar             *float64 `json:"bloodSugar,omitempty"`
	WeightKg               *float64 `json:"weightKg,omitempty"`
	Notes                  *string  `json:"notes,omitempty"`
	Timing                 *string  `json:"timing,omitempty"`
	// AIAlerts are server-generated advisories attached to the reading.
	AIAlerts []map[string]any `json:"aiAlerts,omitempty"`
}

// VitalInput is the payload for recording vitals. PatientID is omitted on the
// self-service endpoint, where the backend resolves it from the credential.
type VitalInput struct {
	PatientID              string   `json:"patientId,omitempty"`
	CycleID                *string  `json:"cycleId,omitempty"`
	TemperatureF           *float64 `json:"temperatureF,omitempty"`
	PulseBpm               *int     `json:"pulseBpm,omitempty"`
	BloodPressureSystolic  *int     `json:"bloodPressureSystolic,omitempty"`
	BloodPressureDiastolic *int     `json:"bloodPressureDiastolic,omitempty"`
	RespiratoryRate        *int     `json:"respiratoryRate,omitempty"`
	OxygenSaturation       *int     `json:"oxygenSaturation,omitempty"`
	PainScore              *int     `json:"painScore,omitempty"`
	PainLocation           *string  `json:"painLocation,omitempty"`
	BloodSugar             *float64 `json:"bloodSugar,omitempty"`
	WeightKg               *float64 `json:"weightKg,omitempty"`
	Notes                  *string  `json:"notes,omitempty"`
	Timing                 *string  `json:"timing,omitempty"`
}

// Appointment is one scheduled visit, in client form.
type Appointment struct {
	ID                 string  `json:"id"`
	PatientID          string  `json:"patientId"`
	AppointmentType    string  `json:"appointmentType"`
	ScheduledDate      string  `json:"scheduledDate"`
	ScheduledTime      string  `json:"scheduledTime"`
	DurationMins       int     `json:"durationMins"`
	CycleID            *string `json:"cycleId,omitempty"`
	ChairNumber        *int    `json:"chairNumber,omitempty"`
	DoctorID           *string `json:"doctorId,omitempty"`
	NurseID            *string `json:"nurseId,omitempty"`
	Status             string  `json:"status"`
	CheckedInAt        *string `json:"checkedInAt,omitempty"`
	CheckedOutAt       *string `json:"checkedOutAt,omitempty"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// AppointmentInput is the payload for booking a visit.
type AppointmentInput struct {
	PatientID       string  `json:"patientId"`
	AppointmentType string  `json:"appointmentType"`
	ScheduledDate   string  `json:"scheduledDate"`
	ScheduledTime   string  `json:"scheduledTime"`
	DurationMins    int     `json:"durationMins,omitempty"`
	CycleID         *string `json:"cycleId,omitempty"`
	ChairNumber     *int    `json:"chairNumber,omitempty"`
	DoctorID        *string `json:"doctorId,omitempty"`
	NurseID         *string `json:"nurseId,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// AppointmentUpdate carries the mutable subset of an appointment.
type AppointmentUpdate struct {
	ScheduledDate      *string `json:"scheduledDate,omitempty"`
	ScheduledTime      *string `json:"scheduledTime,omitempty"`
	DurationMins       *int    `json:"durationMins,omitempty"`
	Status             *string `json:"status,omitempty"`
	ChairNumber        *int    `json:"chairNumber,omitempty"`
	DoctorID           *string `json:"doctorId,omitempty"`
	NurseID            *string `json:"nurseId,omitempty"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// Notification is one in-app notification, in client form.
type Notification struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Data      map[string]any `json:"data,omitempty"`
	IsRead    bool           `json:"isRead"`
	ReadAt    *string        `json:"readAt,omitempty"`
	CreatedAt string         `json:"createdAt"`
}

// SymptomEntry is one patient-reported symptom log, in client form.
type SymptomEntry struct {
	ID             string  `json:"id"`
	PatientID      string  `json:"patientId"`
	CycleID        *string `json:"cycleId,omitempty"`
	RecordedAt     string  `json:"recordedAt"`
	NauseaScore     *int    `json:"nauseaScore,omitempty"`
	VomitingCount   *int    `json:"vomitingCount,omitempty"`
	FatigueScore    *int    `json:"fatigueScore,omitempty"`
	AppetiteScore   *int    `json:"appetiteScore,omitempty"`
	PainScore       *int    `json:"painScore,omitempty"`
	HasFever        bool    `json:"hasFever"`
	HasMouthSores   bool    `json:"hasMouthSores"`
	HasDiarrhea     bool    `json:"hasDiarrhea"`
	HasConstipation bool    `json:"hasConstipation"`
	HasNumbness     bool    `json:"hasNumbness"`
	HasHairLoss     bool    `json:"hasHairLoss"`
	HasSkinChanges  bool    `json:"hasSkinChanges"`
	OtherSymptoms   *string `json:"otherSymptoms,omitempty"`
	MoodNotes       *string `json:"moodNotes,omitempty"`
	// SeverityGrade and alert flags are computed server-side and displayed
	// verbatim by the app.
	SeverityGrade *string          `json:"severityGrade,omitempty"`
	AIAlerts      []map[string]any `json:"aiAlerts,omitempty"`
}

// SymptomInput is the payload for logging symptoms.
type SymptomInput struct {
	PatientID       string  `json:"patientId,omitempty"`
	CycleID         *string `json:"cycleId,omitempty"`
	NauseaScore     *int    `json:"nauseaScore,omitempty"`
	VomitingCount   *int    `json:"vomitingCount,omitempty"`
	FatigueScore    *int    `json:"fatigueScore,omitempty"`
	AppetiteScore   *int    `json:"appetiteScore,omitempty"`
	PainScore       *int    `json:"painScore,omitempty"`
	HasFever        bool    `json:"hasFever"`
	HasMouthSores   bool    `json:"hasMouthSores"`
	HasDiarrhea     bool    `json:"hasDiarrhea"`
	HasConstipation bool    `json:"hasConstipation"`
	HasNumbness     bool    `json:"hasNumbness"`
	HasHairLoss     bool    `json:"hasHairLoss"`
	HasSkinChanges  bool    `json:"hasSkinChanges"`
	OtherSymptoms   *string `json:"otherSymptoms,omitempty"`
	MoodNotes       *string `json:"moodNotes,omitempty"`
}
