package model

// ValidationVerdict is the classifier webhook's judgment for one document.
// Field tags follow the webhook's wire contract.
type ValidationVerdict struct {
	IsAcademicDocument     bool   `json:"esDocumentoAcademico"`
	RejectionReason        string `json:"motivoNoValido,omitempty"`
	DocumentType           string `json:"tipoDocumento,omitempty"`
	PersonName             string `json:"nombrePersona,omitempty"`
	Institution            string `json:"institucion,omitempty"`
	Program                string `json:"programaOEspecializacion,omitempty"`
	IssuedAt               string `json:"fechaEmision,omitempty"`
	Level                  string `json:"nivel,omitempty"`
	Confidence             int    `json:"confianza"`
	InferredSpecialization string `json:"especialidad,omitempty"`
}

// FileStatus is the terminal state of one file inside an ingestion batch.
type FileStatus string

const (
	FileStatusAccepted FileStatus = "accepted"
	FileStatusRejected FileStatus = "rejected"
	FileStatusError    FileStatus = "error"
)

// FileOutcome describes what happened to a single uploaded file.
type FileOutcome struct {
	FileName            string             `json:"fileName"`
	Uploaded            bool               `json:"uploaded"`
	UploadedURL         string             `json:"uploadedUrl,omitempty"`
	Saved               bool               `json:"saved"`
	Status              FileStatus         `json:"status"`
	Reason              string             `json:"reason,omitempty"`
	Error               string             `json:"error,omitempty"`
	Validation          *ValidationVerdict `json:"validation,omitempty"`
	AddedSpecialization string             `json:"addedSpecialization,omitempty"`
}

// BatchReport aggregates one credential upload call.
// uploaded counts files that reached storage; validated+rejected always equals totalFiles.
type BatchReport struct {
	TotalFiles       int           `json:"totalFiles"`
	Uploaded         int           `json:"uploaded"`
	Validated        int           `json:"validated"`
	Rejected         int           `json:"rejected"`
	Details          []FileOutcome `json:"details"`
	SavedCredentials []string      `json:"savedCredentials"`
	TutorVerified    bool          `json:"tutorVerified"`
}

// RemovalReport aggregates one credential removal call.
type RemovalReport struct {
	RemovedCount           int      `json:"removedCount"`
	RemovedURLs            []string `json:"removedUrls"`
	NotFound               []string `json:"notFound"`
	RemovedSpecializations []string `json:"removedSpecializations"`
	RemainingCredentials   []string `json:"remainingCredentials"`
	DeletedFromStorage     int      `json:"deletedFromStorage"`
	StorageDeleteFailed    []string `json:"storageDeleteFailed"`
	TutorVerified          bool     `json:"tutorVerified"`
}

// ProfileStatus reports profile completeness for one role.
// MissingFields is nil, not empty, when the profile is complete.
type ProfileStatus struct {
	Complete      bool     `json:"complete"`
	MissingFields []string `json:"missingFields"`
	CurrentRole   string   `json:"currentRole,omitempty"`
}
