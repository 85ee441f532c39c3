// SPDX-License-Identifier: EPL-2.0

package eq

import "fmt"

// ParamConfigFile is the index of the preset path parameter.
const ParamConfigFile = 0

var paramNames = []string{
	ParamConfigFile: "Configuration file",
}

// NumParams returns how many host parameters the processor exposes.
func (p *Processor) NumParams() int {
	return len(paramNames)
}

func (p *Processor) ParamName(i int) (string, error) {
	if err := checkParam(i); err != nil {
		return "", err
	}
	return paramNames[i], nil
}

// SetParam sets parameter i from its textual value.
func (p *Processor) SetParam(i int, v string) error {
	if err := checkParam(i); err != nil {
		return err
	}
	p.SetConfigPath(v)

	return nil
}

func (p *Processor) Param(i int) (string, error) {
	if err := checkParam(i); err != nil {
		return "", err
	}
	return p.ConfigPath(), nil
}

func checkParam(i int) error {
	if i < 0 || i >= len(paramNames) {
		return fmt.Errorf("%w: %d", ErrInvalidParam, i)
	}
	return nil
}
