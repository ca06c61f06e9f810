package domain

// PatientSummary is the list-view projection of a patient record.
type PatientSummary struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	CancerType  string `json:"cancerType,omitempty"`
	CancerStage string `json:"cancerStage,omitempty"`
}

// Patient is the full patient record in client form. Optional scalars are
// pointers so a null from the backend stays distinguishable from an absent
// field after normalization.
type Patient struct {
	ID          string `json:"id"`
	UserID      string `json:"userId,omitempty"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	BloodGroup  *string `json:"bloodGroup,omitempty"`

	Address                  *string `json:"address,omitempty"`
	City                     *string `json:"city,omitempty"`
	State                    *string `json:"state,omitempty"`
	Pincode                  *string `json:"pincode,omitempty"`
	EmergencyContactName     *string `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone    *string `json:"emergencyContactPhone,omitempty"`
	EmergencyContactRelation *string `json:"emergencyContactRelation,omitempty"`

	HeightCm *float64 `json:"heightCm,omitempty"`
	WeightKg *float64 `json:"weightKg,omitempty"`

	Allergies          []string `json:"allergies,omitempty"`
	Comorbidities      []string `json:"comorbidities,omitempty"`
	CurrentMedications []any    `json:"currentMedications,omitempty"`

	CancerType              *string `json:"cancerType,omitempty"`
	CancerStage             *string `json:"cancerStage,omitempty"`
	DiagnosisDate           *string `json:"diagnosisDate,omitempty"`
	HistopathologyDetails   *string `json:"histopathologyDetails,omitempty"`
	InsuranceProvider       *string `json:"insuranceProvider,omitempty"`
	InsurancePolicyNumber   *string `json:"insurancePolicyNumber,omitempty"`
	InsuranceValidity       *string `json:"insuranceValidity,omitempty"`

	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// FullName joins first and last name for display.
func (p *Patient) FullName() string {
	if p == nil {
		return ""
	}
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// PatientUpdate carries the mutable subset of a patient record. Nil fields
// are omitted from the request so the backend leaves them untouched.
type PatientUpdate struct {
	FirstName             *string  `json:"firstName,omitempty"`
	LastName              *string  `json:"lastName,omitempty"`
	DateOfBirth           *string  `json:"dateOfBirth,omitempty"`
	Gender                *string  `json:"gender,omitempty"`
	BloodGroup            *string  `json:"bloodGroup,omitempty"`
	Address               *string  `json:"address,omitempty"`
	City                  *string  `json:"city,omitempty"`
	State                 *string  `json:"state,omitempty"`
	Pincode               *string  `json:"pincode,omitempty"`
	EmergencyContactName  *string  `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone *string  `json:"emergencyContactPhone,omitempty"`
	HeightCm              *float64 `json:"heightCm,omitempty"`
	WeightKg              *float64 `json:"weightKg,omitempty"`
	Allergies             []string `json:"allergies,omitempty"`
	Comorbidities         []string `json:"comorbidities,omitempty"`
	CancerType            *string  `json:"cancerType,omitempty"`
	CancerStage           *string  `json:"cancerStage,omitempty"`
	DiagnosisDate         *string  `json:"diagnosisDate,omitempty"`
	InsuranceProvider     *string  `json:"insuranceProvider,omitempty"`
	InsurancePolicyNumber *string  `json:"insurancePolicyNumber,omitempty"`
}
