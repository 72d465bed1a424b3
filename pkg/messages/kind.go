package messages

// Kind identifies a validation message.
type Kind string

const (
	KindRequired     Kind = "required"
	KindEmail        Kind = "email"
	KindPhone        Kind = "phone"
	KindPassword     Kind = "password"
	KindMinLength    Kind = "minLength"
	KindMaxLength    Kind = "maxLength"
	KindNumber       Kind = "number"
	KindAlphanumeric Kind = "alphanumeric"
	KindURL          Kind = "url"
	KindKoreanOnly   Kind = "koreanOnly"
	KindEnglishOnly  Kind = "englishOnly"
	KindCreditCard   Kind = "creditCard"
	KindDate         Kind = "date"
)

// kindParams names the placeholders filled from Message's numeric args, in order.
var kindParams = map[Kind][]string{
	KindRequired:     nil,
	KindEmail:        nil,
	KindPhone:        nil,
	KindPassword:     nil,
	KindMinLength:    {"min"},
	KindMaxLength:    {"max"},
	KindNumber:       nil,
	KindAlphanumeric: nil,
	KindURL:          nil,
	KindKoreanOnly:   nil,
	KindEnglishOnly:  nil,
	KindCreditCard:   nil,
	KindDate:         nil,
}

// Kinds returns every known kind.
func Kinds() []Kind {
	return []Kind{
		KindRequired, KindEmail, KindPhone, KindPassword,
		KindMinLength, KindMaxLength, KindNumber, KindAlphanumeric,
		KindURL, KindKoreanOnly, KindEnglishOnly, KindCreditCard, KindDate,
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	_, ok := kindParams[k]
	return ok
}

// Key returns the translation key for k.
func (k Kind) Key() string {
	return "validation." + string(k)
}
