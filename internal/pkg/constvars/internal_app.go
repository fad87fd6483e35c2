package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

// Roles as stored in the "user" session object by the portal login.
const (
	MedVaultRolePatient = "PATIENT"
	MedVaultRoleDoctor  = "DOCTOR"
	MedVaultRoleAdmin   = "ADMIN"
)

const (
	SessionStorageUserKey = "user"
	SessionStoreFile      = "file"
	SessionStoreRedis     = "redis"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)
