package roster

// HeaderMapping maps spreadsheet template header labels to schema field
// keys. The template is externally controlled; headers not present here are
// still emitted in output, filled with the sentinel.
type HeaderMapping map[string]string

// Resolve returns the schema key for a template header, or "" when the
// header is not recognized.
func (m HeaderMapping) Resolve(header string) string {
	return m[header]
}

// DefaultHeaderMapping returns the mapping for the reference roster
// template. Labels must match the template's header row cells exactly.
func DefaultHeaderMapping() HeaderMapping {
	return HeaderMapping{
		"Transaction Type (Add/Update/Term)":            "transaction_type",
		"Transaction Attribute":                         "transaction_attribute",
		"Effective Date":                                "effective_date",
		"Term Date":                                     "term_date",
		"Term Reason":                                   "term_reason",
		"Provider Name":                                 "provider_name",
		"Provider NPI":                                  "provider_npi",
		"Provider Specialty":                            "provider_specialty",
		"State License":                                 "state_license",
		"Organization Name":                             "organization_name",
		"TIN":                                           "tin",
		"Group NPI":                                     "group_npi",
		"Complete Address":                              "complete_address",
		"Phone Number":                                  "phone_number",
		"Fax Number":                                    "fax_number",
		"PPG ID":                                        "ppg_id",
		"Line Of Business (Medicare/Commercial/Medical)": "line_of_business",
	}
}
