package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
// Тексты совпадают с сообщениями, которые видит клиент.
var (
	// Ошибки валидации
	ErrTeamNameRequired           = errors.New("Team name is required")
	ErrTeamPasscodeRequired       = errors.New("Team passcode is required")
	ErrRegistrationFieldsRequired = errors.New("Username, phone number, and password are required")
	ErrLoginFieldsRequired        = errors.New("Username and password are required")
	ErrJoinFieldsRequired         = errors.New("Tournament ID and Team ID are required")
	ErrReportFieldsRequired       = errors.New("Report type and description are required")

	// Ошибки конфликтов (по спецификации отдаются как 400, не 409)
	ErrTeamNameTaken       = errors.New("Team name already exists")
	ErrUsernameTaken       = errors.New("Username already exists")
	ErrPhoneNumberTaken    = errors.New("Phone number already exists")
	ErrTeamAlreadyJoined   = errors.New("Team already joined this tournament")

	// Ошибки аутентификации и доступа
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrInvalidPasscode    = errors.New("Invalid team passcode")

	// Ресурс не найден
	ErrTournamentNotFound = errors.New("Tournament not found")
	ErrTeamNotFound       = errors.New("Team not found")
	ErrPlayerNotFound     = errors.New("Player not found")
)
