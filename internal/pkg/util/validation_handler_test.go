package util

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

type query struct {
	Limit int `validate:"max=50"`
}

func TestParamErrorMessage(t *testing.T) {
	err := validator.New().Struct(query{Limit: 99})
	msg, ok := ParamErrorMessage(err)
	if !ok || !strings.Contains(msg, "Limit") || !strings.Contains(msg, "max") {
		t.Errorf("validation msg = %q ok=%v", msg, ok)
	}

	_, err = strconv.Atoi("ten")
	if msg, ok = ParamErrorMessage(err); !ok || !strings.Contains(msg, "ten") {
		t.Errorf("numeric msg = %q ok=%v", msg, ok)
	}

	if _, ok = ParamErrorMessage(errors.New("boom")); ok {
		t.Error("plain error should not be a param error")
	}
}
