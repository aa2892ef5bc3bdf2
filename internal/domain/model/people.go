package model

import (
	"net/mail"
	"strings"

	apperrors "github.com/target/storefront-admin/internal/errors"
)

// User is an account known to the store API.
type User struct {
	UserID          string `json:"userId,omitempty"`
	Email           string `json:"email"`
	UserName        string `json:"userName"`
	Age             int    `json:"age"`
	RoleName        string `json:"roleName"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

// UserInput registers a new account.
type UserInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	UserName        string `json:"userName"`
	Age             int    `json:"age"`
	RoleName        string `json:"roleName"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

// Validate mirrors the add-user form rules.
func (u UserInput) Validate() error {
	if strings.TrimSpace(u.UserName) == "" {
		return apperrors.ValidationField("userName", "User name is required")
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return apperrors.ValidationField("email", "A valid email is required")
	}
	if len(u.Password) < 6 {
		return apperrors.ValidationField("password", "Password must be at least 6 characters")
	}
	if u.Age <= 0 {
		return apperrors.ValidationField("age", "Age must be a positive number")
	}
	if strings.TrimSpace(u.RoleName) == "" {
		return apperrors.ValidationField("roleName", "Role is required")
	}
	return nil
}

// SupplierHistory is the per-supplier product count.
type SupplierHistory struct {
	SupplierName string `json:"supplierName"`
	ProductCount int    `json:"productCount"`
}

// Doctor is a bookable in-store specialist.
type Doctor struct {
	DoctorID      string `json:"doctorId,omitempty"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	StorePosition string `json:"storePosition"`
	StoreName     string `json:"storeName"`
	PhoneNumber   string `json:"phoneNumber"`
	Email         string `json:"email"`
}

// Validate requires a name and a contact route.
func (d Doctor) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return apperrors.ValidationField("name", "Name is required")
	}
	if strings.TrimSpace(d.StoreName) == "" {
		return apperrors.ValidationField("storeName", "Store name is required")
	}
	if d.Email != "" {
		if _, err := mail.ParseAddress(d.Email); err != nil {
			return apperrors.ValidationField("email", "Email is not valid")
		}
	}
	return nil
}

// BookingInput books a doctor for a user.
type BookingInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DoctorID    string `json:"doctorId"`
	UserID      string `json:"userId"`
	BookingDate string `json:"bookingDate"`
}

// Validate requires the references and a date.
func (b BookingInput) Validate() error {
	switch {
	case strings.TrimSpace(b.Title) == "":
		return apperrors.ValidationField("title", "Title is required")
	case strings.TrimSpace(b.DoctorID) == "":
		return apperrors.ValidationField("doctorId", "Doctor is required")
	case strings.TrimSpace(b.UserID) == "":
		return apperrors.ValidationField("userId", "User is required")
	case strings.TrimSpace(b.BookingDate) == "":
		return apperrors.ValidationField("bookingDate", "Booking date is required")
	}
	return nil
}

// Booking is a booking as listed by the store API.
type Booking struct {
	DoctorName         string `json:"doctorName"`
	DoctorPhone        string `json:"doctorPhone"`
	DoctorEmail        string `json:"doctorEmail"`
	StoreName          string `json:"storeName"`
	UserName           string `json:"userName"`
	BookingStore       string `json:"bookingStore"`
	BookingDate        string `json:"bookingDate"`
	BookingDescription string `json:"bookingDescription"`
}
