package main

import (
	"fmt"
	"strconv"

	"github.com/san-kum/cplane/internal/cnum"
)

var binaryOps = map[string]func(a, b cnum.Complex) cnum.Complex{
	"add": cnum.Complex.Add,
	"sub": cnum.Complex.Sub,
	"mul": cnum.Complex.Mul,
	"div": cnum.Complex.Div,
	"pow": cnum.Exp,
}

var unaryOps = map[string]func(a cnum.Complex) string{
	"conj": func(a cnum.Complex) string { return a.Conj().String() },
	"neg":  func(a cnum.Complex) string { return a.Neg().String() },
	"mod":  func(a cnum.Complex) string { return strconv.FormatFloat(a.Modulus(), 'g', 6, 64) },
	"arg":  func(a cnum.Complex) string { return strconv.FormatFloat(a.Arg(), 'g', 6, 64) },
}

// evaluate applies op to operands written as "re,im" or "re".
func evaluate(op string, operands []string) (string, error) {
	zs := make([]cnum.Complex, len(operands))
	for i, s := range operands {
		z, err := cnum.Parse(s)
		if err != nil {
			return "", err
		}
		zs[i] = z
	}

	if fn, ok := binaryOps[op]; ok {
		if len(zs) != 2 {
			return "", fmt.Errorf("%s takes two operands", op)
		}
		return fn(zs[0], zs[1]).String(), nil
	}
	if fn, ok := unaryOps[op]; ok {
		if len(zs) != 1 {
			return "", fmt.Errorf("%s takes one operand", op)
		}
		return fn(zs[0]), nil
	}
	return "", fmt.Errorf("unknown operation: %s", op)
}
