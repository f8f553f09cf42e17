// Package cnpj implements the 2026 alphanumeric CNPJ rules: the character
// codec, the modulo-11 check digits, identifier generation, validation of
// free-form input and the ##.###.###/####-## display mask.
//
// Letters are valued by their ASCII offset from '0' ('A' is 17, 'Z' is 42),
// not by their position in the alphabet. Digits keep their face value, so
// all-numeric identifiers check exactly like the classic CNPJ.
package cnpj
