package token

// Member is one scanned member of an object or array.
type Member struct {
	// Key is the object key in wire form, empty for array elements.
	Key string
	// Text is the string content without quotes for KindString, the
	// bracketed span for KindObject and KindArray, and the literal text
	// otherwise.
	Text string
	Kind Kind
	// Offset is the byte offset of the value in the scanned text.
	Offset int
}

// Scanner scans the members of a single object or array text.  It
// validates the member grammar but does not descend into nested
// containers.
//
// Use it as
//
//	sc := token.NewScanner(text, token.KindObject)
//	if err := sc.Open(); err != nil {
//		...
//	}
//	for {
//		m, ok, err := sc.Next()
//		...
//	}
type Scanner struct {
	container Kind
	c         Cursor
	n         int
	opened    bool
	err       error
}

// NewScanner returns a scanner of text which is expected to hold a
// container of kind container (KindObject or KindArray).
func NewScanner(text string, container Kind) *Scanner {
	return &Scanner{container: container, c: NewCursor(text)}
}

// Detect reports the container kind of text by its first non space byte.
func Detect(text string) (Kind, bool) {
	c := NewCursor(text).TrimLeft()
	switch c.At(0) {
	case '{':
		return KindObject, true
	case '[':
		return KindArray, true
	}
	return KindNull, false
}

// Count returns the number of members scanned so far.
func (s *Scanner) Count() int { return s.n }

// Open checks the outer shape of the text and positions the scanner on
// the first member.  An empty container yields an error wrapping ErrEmpty,
// whose Notice method returns true; there are no members to scan then.
func (s *Scanner) Open() error {
	if s.opened {
		return s.err
	}
	s.opened = true
	c := s.c.Trim()
	switch {
	case c.Len() == 0:
		return s.fail(ErrEmptyInput, c, "")
	case c.StartsWith("{") && c.EndsWith("}") && c.Len() > 1:
		if s.container != KindObject {
			return s.failKind(ErrNoContainer, KindObject, c)
		}
	case c.StartsWith("[") && c.EndsWith("]") && c.Len() > 1:
		if s.container != KindArray {
			return s.failKind(ErrNoContainer, KindArray, c)
		}
	case c.StartsWith("{") || c.StartsWith("["):
		return s.fail(ErrShapeEnd, c, string(c.At(c.Len()-1)))
	default:
		return s.fail(ErrShape, c, string(c.At(0)))
	}
	s.c = c.Substring(1, c.Len()-1).Trim()
	if s.c.Len() == 0 {
		return s.fail(ErrEmpty, c, "")
	}
	return nil
}

// Next scans the next member.  It returns false with a nil error when the
// container is exhausted.  After an error, Next keeps returning it.
func (s *Scanner) Next() (Member, bool, error) {
	if !s.opened {
		if err := s.Open(); err != nil {
			return Member{}, false, err
		}
	}
	if s.err != nil {
		return Member{}, false, s.err
	}
	if s.c.Len() == 0 {
		return Member{}, false, nil
	}
	if s.n > 0 {
		if s.c.At(0) != ',' {
			return Member{}, false, s.fail(ErrComma, s.c, first(s.c))
		}
		s.c = s.c.Advance(1).TrimLeft()
	}
	m := Member{}
	if s.container == KindObject {
		if err := s.key(&m); err != nil {
			return Member{}, false, err
		}
	}
	if err := s.value(&m); err != nil {
		return Member{}, false, err
	}
	s.n++
	return m, true, nil
}

func (s *Scanner) key(m *Member) error {
	c := s.c
	if c.At(0) != '"' {
		return s.fail(ErrKeyQuote, c, first(c))
	}
	i := closingQuote(c.String())
	if i < 0 {
		return s.fail(ErrKeyUnterminated, c, "")
	}
	m.Key = c.Substring(1, i).String()
	c = c.Advance(i + 1).TrimLeft()
	if c.At(0) != ':' {
		return s.failKey(ErrColon, c, first(c), m.Key)
	}
	s.c = c.Advance(1).TrimLeft()
	return nil
}

func (s *Scanner) value(m *Member) error {
	c := s.c
	m.Offset = c.Offset()
	switch c.At(0) {
	case '"':
		i := closingQuote(c.String())
		if i < 0 {
			return s.failKey(ErrUnterminated, c, "\"", m.Key)
		}
		m.Kind = KindString
		m.Text = c.Substring(1, i).String()
		s.c = c.Advance(i + 1).TrimLeft()
		return nil
	case '{', '[':
		kind := KindObject
		if c.At(0) == '[' {
			kind = KindArray
		}
		i := matching(c.String(), kind)
		if i < 0 {
			return s.failKey(ErrUnbalanced, c, string(kind.open()), m.Key)
		}
		m.Kind = kind
		m.Text = c.Substring(0, i+1).String()
		s.c = c.Advance(i + 1).TrimLeft()
		return nil
	}
	end := c.IndexOf(",", 0)
	lit := c.Substring(0, end).Trim()
	m.Text = lit.String()
	switch m.Text {
	case "true":
		m.Kind = KindTrue
	case "false":
		m.Kind = KindFalse
	case "null":
		m.Kind = KindNull
	default:
		if err := ValidateNumber(m.Text); err != nil {
			return s.failKey(err, c, m.Text, m.Key)
		}
		m.Kind = KindInteger
		if IsFloatText(m.Text) {
			m.Kind = KindFloat
		}
	}
	if end < 0 {
		end = c.Len()
	}
	s.c = c.Advance(end)
	return nil
}

// matching returns the index of the bracket closing the one at d[0], or
// -1.  Brackets inside quoted strings are not counted.
func matching(d string, kind Kind) int {
	open, close := kind.open(), kind.close()
	depth := 0
	for i := 0; i < len(d); i++ {
		switch d[i] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		case '"':
			j := closingQuote(d[i:])
			if j < 0 {
				return -1
			}
			i += j
		}
	}
	return -1
}

func first(c Cursor) string {
	if c.Len() == 0 {
		return ""
	}
	return string(c.At(0))
}

func (s *Scanner) fail(err error, c Cursor, found string) error {
	s.err = &Error{Err: err, Container: s.container, Found: found, Offset: c.Offset()}
	return s.err
}

func (s *Scanner) failKind(err error, kind Kind, c Cursor) error {
	s.err = &Error{Err: err, Container: kind, Offset: c.Offset()}
	return s.err
}

func (s *Scanner) failKey(err error, c Cursor, found, key string) error {
	s.err = &Error{
		Err:       err,
		Container: s.container,
		Key:       key,
		HasKey:    s.container == KindObject,
		Found:     found,
		Offset:    c.Offset(),
	}
	return s.err
}
