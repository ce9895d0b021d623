package console

import (
	"errors"
	"strconv"
	"strings"
)

// errEOF señala fin de entrada; Run lo trata como salida limpia del flujo
// que lo reciba.
var errEOF = errors.New("entrada agotada")

// prompt imprime la etiqueta y lee una línea recortada.
func (c *Console) prompt(label string) (string, error) {
	c.printf("%s", label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", errEOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// promptInt64 lee un entero de 64 bits, reintentando ante entrada no
// numérica.
func (c *Console) promptInt64(label string) (int64, error) {
	for {
		s, err := c.prompt(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			c.printf("Debe introducir un número entero.\n")
			continue
		}
		return n, nil
	}
}

// promptInt lee un int, reintentando ante entrada no numérica.
func (c *Console) promptInt(label string) (int, error) {
	n, err := c.promptInt64(label)
	return int(n), err
}
