package employee

import (
	errors "github.com/frahmantamala/hr-dashboard/internal"
	"github.com/frahmantamala/hr-dashboard/internal/core/common/validation"
)

// CreateEmployeeDTO is the payload of the creation form.
type CreateEmployeeDTO struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Age        int    `json:"age"`
	Department string `json:"department"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Bio        string `json:"bio,omitempty"`
}

func (dto CreateEmployeeDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("first_name", dto.FirstName).Required().MaxLength(100)
	v.Field("last_name", dto.LastName).Required().MaxLength(100)
	v.Field("email", dto.Email).Required().Email()
	v.Field("phone", dto.Phone).Required()
	v.Field("age", dto.Age).Required().Between(18, 100, errors.ErrCodeInvalidAge)
	v.Field("department", dto.Department).Required().OneOf(Departments, errors.ErrCodeInvalidDepartment)
	v.Field("address", dto.Address).Required()
	v.Field("city", dto.City).Required()
	v.Field("state", dto.State).Required()
	v.Field("postal_code", dto.PostalCode).Required()
	v.Field("country", dto.Country).Required()
	v.Field("bio", dto.Bio).MaxLength(1000)
	return v.Validate()
}

func (dto CreateEmployeeDTO) ToAddress() Address {
	return Address{
		Address:    dto.Address,
		City:       dto.City,
		State:      dto.State,
		PostalCode: dto.PostalCode,
		Country:    dto.Country,
	}
}

type SearchQueryDTO struct {
	Query string `json:"query"`
}

type DepartmentsFilterDTO struct {
	Departments []string `json:"departments"`
}

type RatingsFilterDTO struct {
	Ratings []int `json:"ratings"`
}

func (dto RatingsFilterDTO) Validate() *errors.AppError {
	return validation.ValidateRatingFloors(dto.Ratings)
}

type FiltersResponse struct {
	Query       string   `json:"query"`
	Departments []string `json:"departments"`
	Ratings     []int    `json:"ratings"`
}

type EmployeesResponse struct {
	Employees []Employee `json:"employees"`
	Total     int        `json:"total"`
}

type DepartmentsResponse struct {
	Departments []string `json:"departments"`
}

type BookmarkResponse struct {
	EmployeeID int64 `json:"employee_id"`
	Bookmarked bool  `json:"bookmarked"`
}

type StatusResponse struct {
	Loading bool    `json:"loading"`
	Error   *string `json:"error"`
	Total   int     `json:"total"`
}

type EmployeeDetailResponse struct {
	Employee
	Bookmarked bool `json:"bookmarked"`
}
