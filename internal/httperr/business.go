package httperr

import "errors"

// BusinessError é uma regra de negócio violada dentro de uma mutação do
// documento (ex.: last_barber, invalid_price). O handler traduz o código
// para o status HTTP e a mensagem; a camada de domínio só carrega o código.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness diz se err é um BusinessError com o código dado.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	return errors.As(err, &be) && be.Code == code
}
