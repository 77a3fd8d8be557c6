package domain

// NewCardPatch is a merge-patch for the transient new-card entry: nil fields
// are left untouched, set fields overwrite. Validation is deferred until
// submission.
type NewCardPatch struct {
	Number      *string `json:"number,omitempty"`
	ExpiryMonth *string `json:"expiry_month,omitempty"`
	ExpiryYear  *string `json:"expiry_year,omitempty"`
	CVV         *string `json:"cvv,omitempty"`
	HolderName  *string `json:"holder_name,omitempty"`
}

// Apply merges the patch onto the card input.
func (p NewCardPatch) Apply(card *NewCardInput) {
	if p.Number != nil {
		card.Number = *p.Number
	}
	if p.ExpiryMonth != nil {
		card.ExpiryMonth = *p.ExpiryMonth
	}
	if p.ExpiryYear != nil {
		card.ExpiryYear = *p.ExpiryYear
	}
	if p.CVV != nil {
		card.CVV = *p.CVV
	}
	if p.HolderName != nil {
		card.HolderName = *p.HolderName
	}
}

// AddressPatch is a merge-patch for an address.
type AddressPatch struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Street  *string `json:"street,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	ZipCode *string `json:"zip_code,omitempty"`
	Country *string `json:"country,omitempty"`
}

// Apply merges the patch onto the address.
func (p AddressPatch) Apply(a *Address) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Email != nil {
		a.Email = *p.Email
	}
	if p.Phone != nil {
		a.Phone = *p.Phone
	}
	if p.Street != nil {
		a.Street = *p.Street
	}
	if p.City != nil {
		a.City = *p.City
	}
	if p.State != nil {
		a.State = *p.State
	}
	if p.ZipCode != nil {
		a.ZipCode = *p.ZipCode
	}
	if p.Country != nil {
		a.Country = *p.Country
	}
}
