package domain

// ProtocolTemplate is a chemotherapy protocol definition, in client form.
// Drug schedules and modification rules are server-owned documents; the
// client keeps them as generic maps and only renders them.
type ProtocolTemplate struct {
	ID                    string           `json:"id"`
	Name                  string           `json:"name"`
	FullName              *string          `json:"fullName,omitempty"`
	CancerTypes           []string         `json:"cancerTypes,omitempty"`
	CycleDays             int              `json:"cycleDays"`
	TotalCycles           *int             `json:"totalCycles,omitempty"`
	Drugs                 []map[string]any `json:"drugs,omitempty"`
	PreMedications        []map[string]any `json:"preMedications,omitempty"`
	PostMedications       []map[string]any `json:"postMedications,omitempty"`
	RequiredLabs          []string         `json:"requiredLabs,omitempty"`
	MonitoringParameters  []string         `json:"monitoringParameters,omitempty"`
	DoseModificationRules []map[string]any `json:"doseModificationRules,omitempty"`
	CommonSideEffects     []string         `json:"commonSideEffects,omitempty"`
	SeriousSideEffects    []string         `json:"seriousSideEffects,omitempty"`
	ReferenceGuidelines   *string          `json:"referenceGuidelines,omitempty"`
	IsActive              bool             `json:"isActive"`
	CreatedAt             string           `json:"createdAt"`
}

// TreatmentPlan is a patient's treatment plan, in client form.
type TreatmentPlan struct {
	ID                 string         `json:"id"`
	PatientID          string         `json:"patientId"`
	ProtocolTemplateID *string        `json:"protocolTemplateId,omitempty"`
	ProtocolName       string         `json:"protocolName"`
	CustomProtocol     map[string]any `json:"customProtocol,omitempty"`
	StartDate          *string        `json:"startDate,omitempty"`
	PlannedCycles      int            `json:"plannedCycles"`
	CompletedCycles    int            `json:"completedCycles"`
	Status             string         `json:"status"`
	AIRecommendations  *string        `json:"aiRecommendations,omitempty"`
	AIRiskAssessment   map[string]any `json:"aiRiskAssessment,omitempty"`
	AIConfidenceScore  *float64       `json:"aiConfidenceScore,omitempty"`
	CreatedByDoctorID  *string        `json:"createdByDoctorId,omitempty"`
	OpdApprovedBy      *string        `json:"opdApprovedBy,omitempty"`
	OpdApprovedAt      *string        `json:"opdApprovedAt,omitempty"`
	OpdNotes           *string        `json:"opdNotes,omitempty"`
	DaycareApprovedBy  *string        `json:"daycareApprovedBy,omitempty"`
	DaycareApprovedAt  *string        `json:"daycareApprovedAt,omitempty"`
	DaycareNotes       *string        `json:"daycareNotes,omitempty"`
	CreatedAt          string         `json:"createdAt"`
	UpdatedAt          string         `json:"updatedAt"`
}

// TreatmentPlanInput is the payload for creating a plan.
type TreatmentPlanInput struct {
	PatientID          string         `json:"patientId"`
	ProtocolTemplateID *string        `json:"protocolTemplateId,omitempty"`
	ProtocolName       string         `json:"protocolName"`
	CustomProtocol     map[string]any `json:"customProtocol"`
	StartDate          *string        `json:"startDate,omitempty"`
	PlannedCycles      int            `json:"plannedCycles"`
	OpdNotes           *string        `json:"opdNotes,omitempty"`
}

// TreatmentPlanUpdate carries the mutable subset of a plan.
type TreatmentPlanUpdate struct {
	ProtocolName   *string        `json:"protocolName,omitempty"`
	CustomProtocol map[string]any `json:"customProtocol,omitempty"`
	StartDate      *string        `json:"startDate,omitempty"`
	PlannedCycles  *int           `json:"plannedCycles,omitempty"`
	Status         *string        `json:"status,omitempty"`
	OpdNotes       *string        `json:"opdNotes,omitempty"`
	DaycareNotes   *string        `json:"daycareNotes,omitempty"`
}

// TreatmentCycle is one administration cycle of a plan, in client form.
// Labs, vitals snapshots and dose sheets are server-computed documents.
type TreatmentCycle struct {
	ID                   string         `json:"id"`
	TreatmentPlanID      string         `json:"treatmentPlanId"`
	CycleNumber          int            `json:"cycleNumber"`
	ScheduledDate        string         `json:"scheduledDate"`
	ActualDate           *string        `json:"actualDate,omitempty"`
	Status               string         `json:"status"`
	PreChemoLabs         map[string]any `json:"preChemoLabs,omitempty"`
	PreChemoVitals       map[string]any `json:"preChemoVitals,omitempty"`
	PatientWeightKg      *float64       `json:"patientWeightKg,omitempty"`
	CalculatedBsa        *float64       `json:"calculatedBsa,omitempty"`
	DoseModifications    map[string]any `json:"doseModifications,omitempty"`
	ModificationReason   *string        `json:"modificationReason,omitempty"`
	ApprovalNotes        *string        `json:"approvalNotes,omitempty"`
	ImmediateReactions   map[string]any `json:"immediateReactions,omitempty"`
	DischargeNotes       *string        `json:"dischargeNotes,omitempty"`
	FollowUpInstructions *string        `json:"followUpInstructions,omitempty"`
	CreatedAt            string         `json:"createdAt,omitempty"`
	UpdatedAt            string         `json:"updatedAt,omitempty"`
}

// TreatmentCycleInput is the payload for scheduling a cycle.
type TreatmentCycleInput struct {
	TreatmentPlanID string `json:"treatmentPlanId"`
	CycleNumber     int    `json:"cycleNumber"`
	ScheduledDate   string `json:"scheduledDate"`
}

// TreatmentCycleUpdate carries the mutable subset of a cycle.
type TreatmentCycleUpdate struct {
	ScheduledDate      *string        `json:"scheduledDate,omitempty"`
	ActualDate         *string        `json:"actualDate,omitempty"`
	Status             *string        `json:"status,omitempty"`
	PreChemoLabs       map[string]any `json:"preChemoLabs,omitempty"`
	PreChemoVitals     map[string]any `json:"preChemoVitals,omitempty"`
	PatientWeightKg    *float64       `json:"patientWeightKg,omitempty"`
	CalculatedBsa      *float64       `json:"calculatedBsa,omitempty"`
	DoseModifications  map[string]any `json:"doseModifications,omitempty"`
	ModificationReason *string        `json:"modificationReason,omitempty"`
	ApprovalNotes      *string        `json:"approvalNotes,omitempty"`
}

// DrugAdministration is one drug line of a cycle's administration record, in
// client form. The nurse-side workflow updates it as the infusion progresses.
type DrugAdministration struct {
	ID                  string           `json:"id"`
	CycleID             string           `json:"cycleId"`
	DrugName            string           `json:"drugName"`
	PlannedDose         float64          `json:"plannedDose"`
	ActualDose          *float64         `json:"actualDose,omitempty"`
	Unit                string           `json:"unit"`
	Route               string           `json:"route"`
	PlannedDurationMins *int             `json:"plannedDurationMins,omitempty"`
	ActualDurationMins  *int             `json:"actualDurationMins,omitempty"`
	Status              string           `json:"status"`
	PreparedBy          *string          `json:"preparedBy,omitempty"`
	PreparedAt          *string          `json:"preparedAt,omitempty"`
	BatchNumber         *string          `json:"batchNumber,omitempty"`
	ExpiryDate          *string          `json:"expiryDate,omitempty"`
	VerifiedBy          *string          `json:"verifiedBy,omitempty"`
	VerifiedAt          *string          `json:"verifiedAt,omitempty"`
	StartedAt           *string          `json:"startedAt,omitempty"`
	CompletedAt         *string          `json:"completedAt,omitempty"`
	AdministeredBy      *string          `json:"administeredBy,omitempty"`
	IvSite              *string          `json:"ivSite,omitempty"`
	FlowRate            *string          `json:"flowRate,omitempty"`
	Reactions           []map[string]any `json:"reactions,omitempty"`
	Notes               *string          `json:"notes,omitempty"`
	CreatedAt           string           `json:"createdAt"`
}

// DrugAdministrationUpdate carries the mutable subset of an administration
// record.
type DrugAdministrationUpdate struct {
	ActualDose         *float64         `json:"actualDose,omitempty"`
	ActualDurationMins *int             `json:"actualDurationMins,omitempty"`
	Status             *string          `json:"status,omitempty"`
	BatchNumber        *string          `json:"batchNumber,omitempty"`
	ExpiryDate         *string          `json:"expiryDate,omitempty"`
	IvSite             *string          `json:"ivSite,omitempty"`
	FlowRate           *string          `json:"flowRate,omitempty"`
	Reactions          []map[string]any `json:"reactions,omitempty"`
	Notes              *string          `json:"notes,omitempty"`
}
