// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Patient is the central record managed by the gateway. The backend assigns
// ID and Code; DNI is the externally unique national identity number.
type Patient struct {
	ID             int    // Server-assigned, immutable identifier.
	DNI            string // National identity number, 8 digits, unique among active patients.
	Code           string // Server-assigned display code (e.g. "PAC-00042").
	FirstNames     string // Given names as registered.
	LastNames      string // Family names as registered.
	Age            int    // Derived from BirthDate; never trusted from manual input.
	Sex            string // "M" or "F" as the backend catalogues it.
	BirthDate      string // Date-only, "YYYY-MM-DD".
	Address        string
	Phone          string
	Email          string
	Insurance      *InsuranceType  // Optional reference to the insurance catalog. Nil when uninsured.
	ClinicalRecord *ClinicalRecord // Optional clinical-history summary. Nil when none has been opened.
}

// FullName renders the patient the way the listing displays it.
func (p *Patient) FullName() string {
	return p.LastNames + ", " + p.FirstNames
}

// InsuranceType is a read-only entry of the insurance catalog.
// The gateway fetches it to populate selection inputs and never mutates it.
type InsuranceType struct {
	ID           int
	Name         string
	CoverageType string
	CoPayment    string
}

// ClinicalRecord is the clinical-history summary attached to a patient.
type ClinicalRecord struct {
	ID              int
	Code            string
	OpenedAt        string // Date-only, "YYYY-MM-DD".
	BloodGroup      string
	MainAllergies   string
	ChronicDiseases string
	CurrentStatus   string
}
