package service

// The wrappers decorate a service with
// additional behavior such as request validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type PasswordServiceWrapper interface {
	Wrap(PasswordService) PasswordService
}

type ProfileServiceWrapper interface {
	Wrap(ProfileService) ProfileService
}

type MT5ServiceWrapper interface {
	Wrap(MT5Service) MT5Service
}
