package diagnostics

// ErrorKind is a closed enumeration of error categories. The set is flat:
// every fallible boundary operation maps into exactly one kind.
type ErrorKind string

const (
	// File-related errors
	KindOpeningFile            ErrorKind = "OpeningFile"
	KindReadingFile            ErrorKind = "ReadingFile"
	KindCreatingFile           ErrorKind = "CreatingFile"
	KindDeletingFile           ErrorKind = "DeletingFile"
	KindSettingPermissionsFile ErrorKind = "SettingPermissionsFile"
	KindUntaringFile           ErrorKind = "UntaringFile"
	KindInvalidFile            ErrorKind = "InvalidFile"

	// Directory-related errors
	KindCreatingDirectory           ErrorKind = "CreatingDirectory"
	KindDeletingDirectory           ErrorKind = "DeletingDirectory"
	KindSettingPermissionsDirectory ErrorKind = "SettingPermissionsDirectory"

	// JSON-related errors
	KindJSONCreation ErrorKind = "JsonCreation"
	KindJSONReading  ErrorKind = "JsonReading"

	// JSON web token errors
	KindJWT     ErrorKind = "JWT"
	KindJWTAuth ErrorKind = "JWTAUTH"

	// Data-related errors
	KindInvalidType        ErrorKind = "InvalidType"
	KindInvalidChunkData   ErrorKind = "InvalidChunkData"
	KindInvalidHMACData    ErrorKind = "InvalidHMACData"
	KindInvalidHMACSize    ErrorKind = "InvalidHMACSize"
	KindInvalidKey         ErrorKind = "InvalidKey"
	KindInvalidHexData     ErrorKind = "InvalidHexData"
	KindInvalidIvData      ErrorKind = "InvalidIvData"
	KindInvalidBlockData   ErrorKind = "InvalidBlockData"
	KindInvalidAuthRequest ErrorKind = "InvalidAuthRequest"
	KindInvalidMapRequest  ErrorKind = "InvalidMapRequest"
	KindInvalidMapVersion  ErrorKind = "InvalidMapVersion"
	KindInvalidMapData     ErrorKind = "InvalidMapData"
	KindInvalidMapHash     ErrorKind = "InvalidMapHash"
	KindInvalidBufferFit   ErrorKind = "InvalidBufferFit"
	KindInvalidUtf8Data    ErrorKind = "InvalidUtf8Data"
	KindInvalidSignature   ErrorKind = "InvalidSignature"

	// Keystore errors
	KindKeyStoreUnavailable ErrorKind = "KeyStoreUnavailable"
	KindKeyStoreInvalidKey  ErrorKind = "KeyStoreInvalidKey"
	KindKeyStoreTimedOut    ErrorKind = "KeyStoreTimedOut"

	// Permission and access errors
	KindPermissionDenied ErrorKind = "PermissionDenied"
	KindUnauthorized     ErrorKind = "Unauthorized"
	KindNotFound         ErrorKind = "NotFound"

	// Network and protocol errors
	KindNetwork                ErrorKind = "Network"
	KindProtocol               ErrorKind = "Protocol"
	KindConnectionError        ErrorKind = "ConnectionError"
	KindTimeout                ErrorKind = "Timeout"
	KindConnectionTimedOut     ErrorKind = "ConnectionTimedOut"
	KindPortalNotFound         ErrorKind = "PortalNotFound"
	KindPortalConnectionFailed ErrorKind = "PortalConnectionFailed"

	// Authentication-related errors
	KindAuthenticationError ErrorKind = "AuthenticationError"
	KindIdentityError       ErrorKind = "IdentityError"
	KindIdentityInvalid     ErrorKind = "IdentityInvalid"

	// Application state and configuration errors
	KindAppState      ErrorKind = "AppState"
	KindConfigReading ErrorKind = "ConfigReading"
	KindConfigParsing ErrorKind = "ConfigParsing"

	// Resource and memory-related errors
	KindOutOfMemory  ErrorKind = "OutOfMemory"
	KindOverRAMLimit ErrorKind = "OverRamLimit"

	// Message encoding/decoding errors
	KindMessageDecode ErrorKind = "MessageDecode"
	KindMessageEncode ErrorKind = "MessageEncode"

	// Locking and synchronization errors
	KindTimedOut         ErrorKind = "TimedOut"
	KindLockTimeoutRead  ErrorKind = "LockWithTimeoutRead"
	KindLockTimeoutWrite ErrorKind = "LockWithTimeoutWrite"

	// Process supervision errors
	KindSupervisedChild       ErrorKind = "SupervisedChild"
	KindSupervisedChildDied   ErrorKind = "SupervisedChildDied"
	KindSupervisedChildKilled ErrorKind = "SupervisedChildKilled"
	KindSupervisedChildLost   ErrorKind = "SupervisedChildLost"
	KindSupervisedChildFat    ErrorKind = "SupervisedChildFat"

	// General-purpose errors
	KindInputOutput         ErrorKind = "InputOutput"
	KindGeneralError        ErrorKind = "GeneralError"
	KindInitializationError ErrorKind = "InitializationError"
	KindSecretArray         ErrorKind = "SecretArray"

	// Git-related errors
	KindGit              ErrorKind = "Git"
	KindGitFileMissing   ErrorKind = "GitFileMissing"
	KindGitFileIllegible ErrorKind = "GitFileIllegible"

	// Toggle control errors
	KindToggleControl ErrorKind = "ToggleControl"

	// Deprecated errors, kept for wire compatibility with older peers
	KindDepSystem ErrorKind = "DEPSYSTEM"
	KindDepLogger ErrorKind = "DEPLOGGER"
	KindDepRecs   ErrorKind = "DEPRECS"
)

func (k ErrorKind) String() string { return string(k) }

// WarningKind is a closed enumeration of warning categories.
type WarningKind string

const (
	WarnGeneric                 WarningKind = "Warning"
	WarnOutdatedVersion         WarningKind = "OutdatedVersion"
	WarnMisalignedChunk         WarningKind = "MisAlignedChunk"
	WarnFileNotDeleted          WarningKind = "FileNotDeleted"
	WarnConnectionLost          WarningKind = "ConnectionLost"
	WarnResourceExhaustion      WarningKind = "ResourceExhaustion"
	WarnUnexpectedBehavior      WarningKind = "UnexpectedBehavior"
	WarnUnexpectedConfiguration WarningKind = "UnexpectedConfiguration"
)

func (k WarningKind) String() string { return string(k) }
