package onboarding

import "net/url"

// UserInfo carries the optional identity fields attached to a new user.
type UserInfo struct {
	FirstName string
	LastName  string
	Email     string
}

func (u *UserInfo) FillForm(form url.Values) {
	if u.FirstName != "" {
		form.Set("first_name", u.FirstName)
	}
	if u.LastName != "" {
		form.Set("last_name", u.LastName)
	}
	if u.Email != "" {
		form.Set("email", u.Email)
	}
}

// DeviceInfo carries the optional device fields attached to a new user.
type DeviceInfo struct {
	DevicePlatform        string
	DevicePlatformVersion string
	DeviceModel           string
}

func (d *DeviceInfo) FillForm(form url.Values) {
	if d.DevicePlatform != "" {
		form.Set("device_platform", d.DevicePlatform)
	}
	if d.DevicePlatformVersion != "" {
		form.Set("device_platform_version", d.DevicePlatformVersion)
	}
	if d.DeviceModel != "" {
		form.Set("device_model", d.DeviceModel)
	}
}

// Decision is the client's review verdict on an onboarding.
type Decision string

const (
	DecisionOK       Decision = "OK"
	DecisionKOClient Decision = "KO-client"
	DecisionKOAlice  Decision = "KO-alice"
)

type DocumentType string

const (
	DocumentTypeIDCard          DocumentType = "idcard"
	DocumentTypeDriverLicense   DocumentType = "driverlicense"
	DocumentTypePassport        DocumentType = "passport"
	DocumentTypeResidencePermit DocumentType = "residencepermit"
)

type DocumentSide string

const (
	DocumentSideFront DocumentSide = "front"
	DocumentSideBack  DocumentSide = "back"
)

type DocumentSource string

const (
	DocumentSourceCamera DocumentSource = "camera"
	DocumentSourceFile   DocumentSource = "file"
)

// StatusQuery selects, orders and paginates the users returned by
// GetUsersStatus. A zero PageSize returns all users.
type StatusQuery struct {
	Page        int
	PageSize    int
	Descending  bool
	Authorized  bool
	SortBy      string
	FilterField string
	FilterValue string
}
