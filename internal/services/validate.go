package services

import "github.com/go-playground/validator/v10"

// Shared validator for the form DTOs in this package.
var validate = validator.New()
