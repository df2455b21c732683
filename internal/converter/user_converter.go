package converter

import (
	"mindcare-backend/internal/delivery/dto"
	"mindcare-backend/internal/domain/entity"
)

func UserToResponse(user *entity.User, roleName string) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		PhotoURL:    user.PhotoURL,
		Role:        roleName,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}

	if user.DoctorProfile != nil {
		resp.DoctorProfile = &dto.DoctorResponse{
			ID:          user.ID,
			DisplayName: user.DisplayName,
			Email:       user.Email,
			PhotoURL:    user.PhotoURL,
			Specialty:   user.DoctorProfile.Specialty,
			Experience:  user.DoctorProfile.Experience,
			Biography:   user.DoctorProfile.Biography,
		}
	}

	return resp
}

func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	return &dto.DoctorResponse{
		ID:          profile.UserID,
		DisplayName: profile.User.DisplayName,
		Email:       profile.User.Email,
		PhotoURL:    profile.User.PhotoURL,
		Specialty:   profile.Specialty,
		Experience:  profile.Experience,
		Biography:   profile.Biography,
	}
}
