// file: internals/features/moderation/settings/dto/settings_dto.go
package dto

type SetAutoApproveRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

type AutoApproveResponse struct {
	Enabled bool `json:"enabled"`
}
