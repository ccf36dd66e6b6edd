package complianceservice

// ViolationSeverity серьезность нарушения
type ViolationSeverity string

const (
	SeverityCritical ViolationSeverity = "critical"
	SeverityWarning  ViolationSeverity = "warning"
)

// Violation нарушение регуляторных требований водителя или автомобиля
// (лицензия, медсправка, регистрация, страховка, лимиты часов за рулем)
type Violation struct {
	Code     string            `json:"code"`
	Severity ViolationSeverity `json:"severity"`
	Message  string            `json:"message"`
}

// Verdict вердикт проверки соответствия
type Verdict struct {
	Compliant  bool        `json:"compliant"`
	Violations []Violation `json:"violations"`
}

// HasCritical returns true if any violation is critical.
// Critical violations block hold conversion outright and are never
// admin-overridable.
func (v *Verdict) HasCritical() bool {
	for _, violation := range v.Violations {
		if violation.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// CriticalMessages возвращает сообщения критических нарушений
func (v *Verdict) CriticalMessages() []string {
	messages := make([]string, 0)
	for _, violation := range v.Violations {
		if violation.Severity == SeverityCritical {
			messages = append(messages, violation.Message)
		}
	}
	return messages
}

// ErrorResponse модель ошибки от ComplianceService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
