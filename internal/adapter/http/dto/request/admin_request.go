package request

import (
	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase"
)

type SettingCreateRequest struct {
	Key         string `json:"key" validate:"required|maxLen:100"`
	Value       string `json:"value"`
	Description string `json:"description" validate:"maxLen:500"`
	IsPublic    bool   `json:"is_public"`
}

func (r SettingCreateRequest) ToEntity() (entities.SystemConfig, map[string]string) {
	if problems := Validate(&r); problems != nil {
		return entities.SystemConfig{}, problems
	}
	return entities.SystemConfig{Key: r.Key, Value: r.Value, Description: r.Description, IsPublic: r.IsPublic}, nil
}

// SettingUpdateRequest is a partial update; omitted fields keep their value.
type SettingUpdateRequest struct {
	Value       *string `json:"value"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"is_public"`
}

func (r SettingUpdateRequest) ToPatch() (usecase.SettingPatch, map[string]string) {
	if r.Value == nil && r.Description == nil && r.IsPublic == nil {
		return usecase.SettingPatch{}, map[string]string{"value": "at least one field is required"}
	}
	return usecase.SettingPatch{Value: r.Value, Description: r.Description, IsPublic: r.IsPublic}, nil
}

type WhiteLabelRequest struct {
	CompanyName    string `json:"company_name" validate:"required|maxLen:200"`
	LogoURL        string `json:"logo_url" validate:"maxLen:500"`
	PrimaryColor   string `json:"primary_color" validate:"maxLen:20"`
	SecondaryColor string `json:"secondary_color" validate:"maxLen:20"`
	Domain         string `json:"domain" validate:"maxLen:200"`
	SupportEmail   string `json:"support_email" validate:"email"`
}

func (r WhiteLabelRequest) ToEntity() (entities.WhiteLabel, map[string]string) {
	if problems := Validate(&r); problems != nil {
		return entities.WhiteLabel{}, problems
	}
	return entities.WhiteLabel{
		CompanyName:    r.CompanyName,
		LogoURL:        r.LogoURL,
		PrimaryColor:   r.PrimaryColor,
		SecondaryColor: r.SecondaryColor,
		Domain:         r.Domain,
		SupportEmail:   r.SupportEmail,
	}, nil
}

type UserRoleRequest struct {
	Role string `json:"role" validate:"required|in:admin,accountant,user"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required|email"`
	Password string `json:"password" validate:"required"`
}

type SignUpRequest struct {
	Email     string `json:"email" validate:"required|email"`
	Password  string `json:"password" validate:"required|minLen:8"`
	FirstName string `json:"first_name" validate:"maxLen:100"`
	LastName  string `json:"last_name" validate:"maxLen:100"`
}

func (r SignUpRequest) ToInput() entities.SignUpInput {
	return entities.SignUpInput{Email: r.Email, Password: r.Password, FirstName: r.FirstName, LastName: r.LastName}
}

type PortalInviteRequest struct {
	ClientID string `json:"client_id" validate:"required"`
	Email    string `json:"email" validate:"required|email"`
}

type PortalRegisterRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required|minLen:8"`
}

type PortalLoginRequest struct {
	Email    string `json:"email" validate:"required|email"`
	Password string `json:"password" validate:"required"`
}
