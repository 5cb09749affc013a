package util

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// ParamErrorMessage 把绑定阶段的错误翻译成可读提示，非参数错误返回 false
func ParamErrorMessage(err error) (string, bool) {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) && len(vErrs) > 0 {
		firstError := vErrs[0]
		return fmt.Sprintf("字段 [%s] 校验失败，规则 [%s]",
			firstError.Field(),
			firstError.Tag()), true
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return fmt.Sprintf("参数 [%s] 不是合法数字", numErr.Num), true
	}
	return "", false
}
