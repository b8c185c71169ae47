package mode

import (
	"fmt"
	"strings"

	"github.com/dzr01145/chatbot/config"
	"github.com/thoas/go-funk"
)

type mode struct {
	value       string
	description string
}

var (
	RT   = mode{value: "rt", description: "Run as REST API server."}
	CONV = mode{value: "conv", description: "Convert raw data (jirei csv / law markdown) into knowledge json."}
)

func (m *mode) Val() string {
	return m.value
}

func List() []mode {
	return []mode{RT, CONV}
}

func Help() string {
	rtn := []string{fmt.Sprintf("[Available Modes] %s", config.VERSION)}
	for _, m := range List() {
		rtn = append(rtn, fmt.Sprintf("> %s\n\t%s", m.value, m.description))
	}
	return strings.Join(rtn, "\n") + "\n"
}

func IsValidMode(m *string) bool {
	f := funk.Filter(List(), func(md mode) bool {
		return md.value == *m
	})
	return len(f.([]mode)) > 0
}
