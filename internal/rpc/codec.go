package rpc

import (
	"errors"

	"google.golang.org/protobuf/encoding/protowire"
)

// ErrParse reports a frame whose protobuf payload does not decode.
var ErrParse = errors.New("malformed message")

func appendString(out []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return out
	}
	out = protowire.AppendTag(out, num, protowire.BytesType)
	return protowire.AppendString(out, s)
}

// appendOptString emits present-but-empty strings too; on the wire,
// presence is the whole point of the field.
func appendOptString(out []byte, num protowire.Number, s *string) []byte {
	if s == nil {
		return out
	}
	out = protowire.AppendTag(out, num, protowire.BytesType)
	return protowire.AppendString(out, *s)
}

func appendBool(out []byte, num protowire.Number, v bool) []byte {
	if !v {
		return out
	}
	out = protowire.AppendTag(out, num, protowire.VarintType)
	return protowire.AppendVarint(out, 1)
}

func appendVarint(out []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return out
	}
	out = protowire.AppendTag(out, num, protowire.VarintType)
	return protowire.AppendVarint(out, uint64(v))
}

func appendMessage(out []byte, num protowire.Number, body []byte) []byte {
	out = protowire.AppendTag(out, num, protowire.BytesType)
	return protowire.AppendBytes(out, body)
}

// skipField drops an unknown field, returning the remaining buffer.
func skipField(num protowire.Number, typ protowire.Type, b []byte) ([]byte, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return nil, ErrParse
	}
	return b[n:], nil
}

// ----- User -----

func (m *User) Marshal() []byte {
	var out []byte
	out = appendString(out, 1, m.Id)
	out = appendString(out, 2, m.Username)
	out = appendString(out, 3, m.Role)
	return out
}

func (m *User) Unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return ErrParse
		}
		b = b[n:]
		if typ == protowire.BytesType && num >= 1 && num <= 3 {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return ErrParse
			}
			switch num {
			case 1:
				m.Id = string(v)
			case 2:
				m.Username = string(v)
			case 3:
				m.Role = string(v)
			}
			b = b[n:]
			continue
		}
		var err error
		if b, err = skipField(num, typ, b); err != nil {
			return err
		}
	}
	return nil
}

// ----- SessionState -----

func (m *SessionState) Marshal() []byte {
	var out []byte
	out = appendBool(out, 1, m.Authenticated)
	if m.User != nil {
		out = appendMessage(out, 2, m.User.Marshal())
	}
	out = appendString(out, 3, m.ActiveTab)
	out = appendString(out, 4, m.SelectedDate)
	return out
}

func (m *SessionState) Unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return ErrParse
		}
		b = b[n:]
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return ErrParse
			}
			m.Authenticated = v != 0
			b = b[n:]
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return ErrParse
			}
			m.User = &User{}
			if err := m.User.Unmarshal(v); err != nil {
				return err
			}
			b = b[n:]
		case num == 3 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return ErrParse
			}
			m.ActiveTab = string(v)
			b = b[n:]
		case num == 4 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return ErrParse
			}
			m.SelectedDate = string(v)
			b = b[n:]
		default:
			var err error
			if b, err = skipField(num, typ, b); err != nil {
				return err
			}
		}
	}
	return nil
}

// ----- Appointment -----

func (m *Appointment) Marshal() []byte {
	var out []byte
	out = appendString(out, 1, m.Id)
	out = appendString(out, 2, m.Date)
	out = appendString(out, 3, m.TimeSlot)
	out = appendString(out, 4, m.Name)
	out = appendString(out, 5, m.Description)
	out = appendString(out, 6, m.Outcome)
	out = appendString(out, 7, m.Status)
	out = appendVarint(out, 8, m.CreatedAt)
	return out
}

func (m *Appointment) Unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return ErrParse
		}
		b = b[n:]
		switch {
		case typ == protowire.BytesType && num >= 1 && num <= 7:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return ErrParse
			}
			switch num {
			case 1:
				m.Id = string(v)
			case 2:
				m.Date = string(v)
			case 3:
				m.TimeSlot = string(v)
			case 4:
				m.Name = string(v)
			case 5:
				m.Description = string(v)
			case 6:
				m.Outcome = string(v)
			case 7:
				m.Status = string(v)
			}
			b = b[n:]
		case num == 8 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return ErrParse
			}
			m.CreatedAt = int64(v)
			b = b[n:]
		default:
			var err error
			if b, err = skipField(num, typ, b); err != nil {
				return err
			}
		}
	}
	return nil
}

// ----- Login / Logout -----

func (m *LoginRequest) Marshal() []byte {
	var out []byte
	out = appendString(out, 1, m.Username)
	out = appendString(out, 2, m.Password)
	return out
}

func (m *LoginRequest) Unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return ErrParse
		}
		b = b[n:]
		if typ == protowire.BytesType && (num == 1 || num == 2) {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return ErrParse
			}
			if num == 1 {
				m.Username = string(v)
			} else {
				m.Password = string(v)
			}
			b = b[n:]
			continue
		}
		var err error
		if b, err = skipField(num, typ, b); err != nil {
			return err
		}
	}
	return nil
}

func (m *LoginResponse) Marshal() []byte {
	var out []byte
	out = appendString(out, 1, m.Token)
	if m.User != nil {
		out = appendMessage(out, 2, m.User.Marshal())
	}
	if m.State != nil {
		out = appendMessage(out, 3, m.State.Marshal())
	}
	return out
}

func (m *LoginResponse) Unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return ErrParse
		}
		b = b[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return ErrParse
			}
			m.Token = string(v)
			b = b[n:]
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return ErrParse
			}
			m.User = &User{}
			if err := m.User.Unmarshal(v); err != nil {
				return err
			}
			b = b[n:]
		case num == 3 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return ErrParse
			}
			m.State = &SessionState{}
			if err := m.State.Unmarshal(v); err != nil {
				return err
			}
			b = b[n:]
		default:
			var err error
			if b, err = skipField(num, typ, b); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *LogoutRequest) Marshal() []byte { return nil }

func (m *LogoutRequest) Unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return ErrParse
		}
		b = b[n:]
		var err error
		if b, err = skipField(num, typ, b); err != nil {
			return err
		}
	}
	return nil
}

func (m *LogoutResponse) Marshal() []byte {
	var out []byte
	if m.State != nil {
		out = appendMessage(out, 1, m.State.Marshal())
	}
	return out
}

func (m *LogoutResponse) Unmarshal(b []byte) error {
	return unmarshalStateWrapper(b, &m.State)
}

// unmarshalStateWrapper decodes the common {state = 1} response shape.
func unmarshalStateWrapper(b []byte, dst **SessionState) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return ErrParse
		}
		b = b[n:]
		if num == 1 && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return ErrParse
			}
			*dst = &SessionState{}
			if err := (*dst).Unmarshal(v); err != nil {
				return err
			}
			b = b[n:]
			continue
		}
		var err error
		if b, err = skipField(num, typ, b); err != nil {
			return err
		}
	}
	return nil
}

// ----- Create -----

func (m *CreateAppointmentRequest) Marshal() []byte {
	var out []byte
	out = appendString(out, 1, m.Name)
	out = appendString(out, 2, m.Description)
	out = appendString(out, 3, m.Date)
	out = appendString(out, 4, m.TimeSlot)
	return out
}

func (m *CreateAppointmentRequest) Unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return ErrParse
		}
		b = b[n:]
		if typ == protowire.BytesType && num >= 1 && num <= 4 {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return ErrParse
			}
			switch num {
			case 1:
				m.Name = string(v)
			case 2:
				m.Description = string(v)
			case 3:
				m.Date = string(v)
			case 4:
				m.TimeSlot = string(v)
			}
			b = b[n:]
			continue
		}
		var err error
		if b, err = skipField(num, typ, b); err != nil {
			return err
		}
	}
	return nil
}

func (m *CreateAppointmentResponse) Marshal() []byte {
	var out []byte
	if m.Appointment != nil {
		out = appendMessage(out, 1, m.Appointment.Marshal())
	}
	return out
}

func (m *CreateAppointmentResponse) Unmarshal(b []byte) error {
	return unmarshalAppointmentWrapper(b, &m.Appointment)
}

// unmarshalAppointmentWrapper decodes the common {appointment = 1} shape.
func unmarshalAppointmentWrapper(b []byte, dst **Appointment) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return ErrParse
		}
		b = b[n:]
		if num == 1 && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return ErrParse
			}
			*dst = &Appointment{}
			if err := (*dst).Unmarshal(v); err != nil {
				return err
			}
			b = b[n:]
			continue
		}
		var err error
		if b, err = skipField(num, typ, b); err != nil {
			return err
		}
	}
	return nil
}

// ----- Update -----

func (m *UpdateAppointmentRequest) Marshal() []byte {
	var out []byte
	out = appendString(out, 1, m.Id)
	out = appendOptString(out, 2, m.Name)
	out = appendOptString(out, 3, m.Description)
	out = appendOptString(out, 4, m.Date)
	out = appendOptString(out, 5, m.TimeSlot)
	out = appendOptString(out, 6, m.Status)
	out = appendOptString(out, 7, m.Outcome)
	return out
}

func (m *UpdateAppointmentRequest) Unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return ErrParse
		}
		b = b[n:]
		if typ == protowire.BytesType && num >= 1 && num <= 7 {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return ErrParse
			}
			s := string(v)
			switch num {
			case 1:
				m.Id = s
			case 2:
				m.Name = &s
			case 3:
				m.Description = &s
			case 4:
				m.Date = &s
			case 5:
				m.TimeSlot = &s
			case 6:
				m.Status = &s
			case 7:
				m.Outcome = &s
			}
			b = b[n:]
			continue
		}
		var err error
		if b, err = skipField(num, typ, b); err != nil {
			return err
		}
	}
	return nil
}

func (m *UpdateAppointmentResponse) Marshal() []byte {
	var out []byte
	if m.Appointment != nil {
		out = appendMessage(out, 1, m.Appointment.Marshal())
	}
	out = appendBool(out, 2, m.Found)
	return out
}

func (m *UpdateAppointmentResponse) Unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return ErrParse
		}
		b = b[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return ErrParse
			}
			m.Appointment = &Appointment{}
			if err := m.Appointment.Unmarshal(v); err != nil {
				return err
			}
			b = b[n:]
		case num == 2 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return ErrParse
			}
			m.Found = v != 0
			b = b[n:]
		default:
			var err error
			if b, err = skipField(num, typ, b); err != nil {
				return err
			}
		}
	}
	return nil
}

// ----- Delete -----

func (m *DeleteAppointmentRequest) Marshal() []byte {
	return appendString(nil, 1, m.Id)
}

func (m *DeleteAppointmentRequest) Unmarshal(b []byte) error {
	return unmarshalSingleString(b, &m.Id)
}

func (m *DeleteAppointmentResponse) Marshal() []byte { return nil }

func (m *DeleteAppointmentResponse) Unmarshal(b []byte) error {
	var drop string
	return unmarshalSingleString(b, &drop)
}

// unmarshalSingleString decodes the common {string = 1} request shape.
func unmarshalSingleString(b []byte, dst *string) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return ErrParse
		}
		b = b[n:]
		if num == 1 && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return ErrParse
			}
			*dst = string(v)
			b = b[n:]
			continue
		}
		var err error
		if b, err = skipField(num, typ, b); err != nil {
			return err
		}
	}
	return nil
}

// ----- ListDay -----

func (m *ListDayRequest) Marshal() []byte {
	return appendString(nil, 1, m.Date)
}

func (m *ListDayRequest) Unmarshal(b []byte) error {
	return unmarshalSingleString(b, &m.Date)
}

func (m *SlotRow) Marshal() []byte {
	var out []byte
	out = appendString(out, 1, m.Label)
	out = appendVarint(out, 2, int64(m.StartHour))
	out = appendBool(out, 3, m.Past)
	for _, a := range m.Appointments {
		out = appendMessage(out, 4, a.Marshal())
	}
	return out
}

func (m *SlotRow) Unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return ErrParse
		}
		b = b[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return ErrParse
			}
			m.Label = string(v)
			b = b[n:]
		case num == 2 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return ErrParse
			}
			m.StartHour = int32(v)
			b = b[n:]
		case num == 3 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return ErrParse
			}
			m.Past = v != 0
			b = b[n:]
		case num == 4 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return ErrParse
			}
			a := &Appointment{}
			if err := a.Unmarshal(v); err != nil {
				return err
			}
			m.Appointments = append(m.Appointments, a)
			b = b[n:]
		default:
			var err error
			if b, err = skipField(num, typ, b); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *ListDayResponse) Marshal() []byte {
	var out []byte
	out = appendString(out, 1, m.Date)
	for _, s := range m.Slots {
		out = appendMessage(out, 2, s.Marshal())
	}
	out = appendVarint(out, 3, int64(m.Total))
	out = appendVarint(out, 4, int64(m.Completed))
	return out
}

func (m *ListDayResponse) Unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return ErrParse
		}
		b = b[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return ErrParse
			}
			m.Date = string(v)
			b = b[n:]
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return ErrParse
			}
			row := &SlotRow{}
			if err := row.Unmarshal(v); err != nil {
				return err
			}
			m.Slots = append(m.Slots, row)
			b = b[n:]
		case num == 3 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return ErrParse
			}
			m.Total = int32(v)
			b = b[n:]
		case num == 4 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return ErrParse
			}
			m.Completed = int32(v)
			b = b[n:]
		default:
			var err error
			if b, err = skipField(num, typ, b); err != nil {
				return err
			}
		}
	}
	return nil
}

// ----- SelectTab -----

func (m *SelectTabRequest) Marshal() []byte {
	return appendString(nil, 1, m.Tab)
}

func (m *SelectTabRequest) Unmarshal(b []byte) error {
	return unmarshalSingleString(b, &m.Tab)
}

func (m *SelectTabResponse) Marshal() []byte {
	var out []byte
	if m.State != nil {
		out = appendMessage(out, 1, m.State.Marshal())
	}
	return out
}

func (m *SelectTabResponse) Unmarshal(b []byte) error {
	return unmarshalStateWrapper(b, &m.State)
}

// ----- SearchReports -----

func (m *SearchReportsRequest) Marshal() []byte {
	return appendString(nil, 1, m.Query)
}

func (m *SearchReportsRequest) Unmarshal(b []byte) error {
	return unmarshalSingleString(b, &m.Query)
}

func (m *ReportGroup) Marshal() []byte {
	var out []byte
	out = appendString(out, 1, m.Date)
	for _, a := range m.Appointments {
		out = appendMessage(out, 2, a.Marshal())
	}
	return out
}

func (m *ReportGroup) Unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return ErrParse
		}
		b = b[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return ErrParse
			}
			m.Date = string(v)
			b = b[n:]
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return ErrParse
			}
			a := &Appointment{}
			if err := a.Unmarshal(v); err != nil {
				return err
			}
			m.Appointments = append(m.Appointments, a)
			b = b[n:]
		default:
			var err error
			if b, err = skipField(num, typ, b); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *SearchReportsResponse) Marshal() []byte {
	var out []byte
	for _, g := range m.Groups {
		out = appendMessage(out, 1, g.Marshal())
	}
	out = appendVarint(out, 2, int64(m.Total))
	return out
}

func (m *SearchReportsResponse) Unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return ErrParse
		}
		b = b[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return ErrParse
			}
			g := &ReportGroup{}
			if err := g.Unmarshal(v); err != nil {
				return err
			}
			m.Groups = append(m.Groups, g)
			b = b[n:]
		case num == 2 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return ErrParse
			}
			m.Total = int32(v)
			b = b[n:]
		default:
			var err error
			if b, err = skipField(num, typ, b); err != nil {
				return err
			}
		}
	}
	return nil
}
