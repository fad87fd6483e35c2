package constvars

const (
	UrgencyLevelHigh    = "HIGH"
	UrgencyLevelMedium  = "MEDIUM"
	UrgencyLevelLow     = "LOW"
	DefaultUrgencyLevel = UrgencyLevelMedium
)

// Hotlines shown on the idle screen and on every failure dialog.
const (
	HotlineNationalEmergency = "108"
	HotlineAmbulance         = "102"
	HotlineFire              = "101"
)

type Hotline struct {
	Service string
	Number  string
}

var EmergencyHotlines = []Hotline{
	{Service: "National Emergency", Number: HotlineNationalEmergency},
	{Service: "Ambulance", Number: HotlineAmbulance},
	{Service: "Fire", Number: HotlineFire},
}

const (
	EndpointPatientEmergencyRequest = "/api/patient/emergency-request/%s"
	EndpointDoctorEmergencyRequests = "/api/doctor/emergency-requests/%s"
	EndpointDoctorAcceptEmergency   = "/api/doctor/accept-emergency/%s/%s"
)

// ISO-8601 instant with millisecond precision, as produced by Date.toISOString.
const EmergencyTimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var EmergencyNotificationSummary = []string{
	"Notify all available doctors",
	"Alert nearby hospitals",
	"Send your location & medical info",
}

var EmergencyAfterSubmitGuidance = []string{
	"Keep your phone available",
	"Stay at your current location if safe",
	"Call " + HotlineNationalEmergency + "/" + HotlineAmbulance + " if life-threatening",
}

const (
	DialogTitleMissingInformation = "Required Information Missing"
	DialogTitleConfirmEmergency   = "Send Emergency Request?"
	DialogTitleSending            = "Sending Emergency Request..."
	DialogTitleSent               = "Emergency Request Sent Successfully!"
	DialogTitleConnectionError    = "Connection Error"
	DialogTitleNotSignedIn        = "Session Required"
	DialogTitleHotlines           = "Emergency Hotlines"
)

const (
	DialogMessageGenuineOnly     = "Only use for genuine medical emergencies!"
	DialogMessageNotifying       = "Notifying healthcare providers..."
	DialogMessageKeepPhone       = "Please keep your phone available"
	DialogMessageProvideRequired = "Please provide the following required information:"
	DialogMessageRequestSentTo   = "Your request has been sent to all available doctors, nearby hospitals and emergency response teams."
	DialogMessageLifeThreatening = "If this is life-threatening, call the hotlines below or go to the nearest hospital."
	DialogMessageLifeThreatForm  = "Life-threatening emergency? Call " + HotlineNationalEmergency + " immediately instead of using this form."
)

var DraftFieldLabels = map[string]string{
	"urgencyLevel":       "Urgency level",
	"symptoms":           "Chief complaint description",
	"contactNumber":      "Contact number",
	"location":           "Current location",
	"medicalHistory":     "Medical history",
	"patientNotes":       "Additional information",
	"allergies":          "Allergies",
	"currentMedications": "Current medications",
}
