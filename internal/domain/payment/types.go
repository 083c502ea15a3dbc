package payment

type Method string

// Mocked payment providers; no real gateway is ever contacted.
const (
	MethodKaspi Method = "kaspi"
	MethodHalyk Method = "halyk"
	MethodBCC   Method = "bcc"
	MethodMock  Method = "mock"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	switch m {
	case MethodKaspi, MethodHalyk, MethodBCC, MethodMock:
		return true
	default:
		return false
	}
}

func NewMethod(s string) (Method, error) {
	m := Method(s)
	if !m.IsValid() {
		return "", ErrUnsupportedMethod
	}
	return m, nil
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed:
		return true
	default:
		return false
	}
}
