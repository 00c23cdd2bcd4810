package validation

import "github.com/Domenick1991/vehiclerental/internal/domain"

const (
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"

	MsgPassword         = "Password must be at least 6 characters."
	MsgConfirmPassword  = "Confirm password must be at least 6 characters."
	MsgPasswordMismatch = "Passwords don't match."
)

func ValidateLogin(req domain.LoginRequest) Result {
	var c collector
	c.run(
		check(FieldEmail, MsgEmail, isEmail(req.Email)),
		check(FieldPassword, MsgPassword, minLen(req.Password, 6)),
	)
	return c.result()
}

func ValidateSignup(req domain.SignupRequest) Result {
	var c collector
	c.run(
		check(FieldFullName, MsgFullName, minLen(req.FullName, 3)),
		check(FieldEmail, MsgEmail, isEmail(req.Email)),
		check(FieldPassword, MsgPassword, minLen(req.Password, 6)),
		check(FieldConfirmPassword, MsgConfirmPassword, minLen(req.ConfirmPassword, 6)),
		check(FieldConfirmPassword, MsgPasswordMismatch, req.Password == req.ConfirmPassword),
	)
	return c.result()
}
