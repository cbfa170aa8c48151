package models

import (
	"reflect"
	"slices"
)

// TripType distinguishes round trips from one-way travel.
type TripType string

const (
	TripTypeRound  TripType = "round_trip"
	TripTypeSingle TripType = "single_trip"
)

// TripData is the structured trip information accumulated during intake.
// Zero values mean "not known yet".
type TripData struct {
	Name                  string   `json:"name,omitempty" bson:"name,omitempty" mapstructure:"name"`
	Age                   int      `json:"age,omitempty" bson:"age,omitempty" mapstructure:"age"`
	Destination           string   `json:"destination,omitempty" bson:"destination,omitempty" mapstructure:"destination"`
	ArrivalCountry        string   `json:"arrival_country,omitempty" bson:"arrival_country,omitempty" mapstructure:"arrival_country"`
	DepartureCountry      string   `json:"departure_country,omitempty" bson:"departure_country,omitempty" mapstructure:"departure_country"`
	TripType              TripType `json:"trip_type,omitempty" bson:"trip_type,omitempty" mapstructure:"trip_type"`
	DepartureDate         string   `json:"departure_date,omitempty" bson:"departure_date,omitempty" mapstructure:"departure_date"`
	ReturnDate            string   `json:"return_date,omitempty" bson:"return_date,omitempty" mapstructure:"return_date"`
	TripStartDate         string   `json:"trip_start_date,omitempty" bson:"trip_start_date,omitempty" mapstructure:"trip_start_date"`
	TripEndDate           string   `json:"trip_end_date,omitempty" bson:"trip_end_date,omitempty" mapstructure:"trip_end_date"`
	TripDuration          int      `json:"trip_duration,omitempty" bson:"trip_duration,omitempty" mapstructure:"trip_duration"`
	NumberOfTravellers    int      `json:"number_of_travellers,omitempty" bson:"number_of_travellers,omitempty" mapstructure:"number_of_travellers"`
	NumberOfAdults        int      `json:"number_of_adults,omitempty" bson:"number_of_adults,omitempty" mapstructure:"number_of_adults"`
	NumberOfChildren      int      `json:"number_of_children,omitempty" bson:"number_of_children,omitempty" mapstructure:"number_of_children"`
	TravellerAges         []int    `json:"traveller_ages,omitempty" bson:"traveller_ages,omitempty" mapstructure:"traveller_ages"`
	Activities            []string `json:"activities,omitempty" bson:"activities,omitempty" mapstructure:"activities"`
	MedicalConditions     string   `json:"medical_conditions,omitempty" bson:"medical_conditions,omitempty" mapstructure:"medical_conditions"`
	MedicalConditionsList []string `json:"medical_conditions_list,omitempty" bson:"medical_conditions_list,omitempty" mapstructure:"medical_conditions_list"`
	TripStyle             string   `json:"trip_style,omitempty" bson:"trip_style,omitempty" mapstructure:"trip_style"`
}

// IsEmpty reports whether no field holds a value.
func (t TripData) IsEmpty() bool {
	v := reflect.ValueOf(t)
	for i := 0; i < v.NumField(); i++ {
		if !isBlank(v.Field(i)) {
			return false
		}
	}
	return true
}

// Merge fills the empty fields of t from update and returns the JSON names of the
// fields that were filled. Fields that already hold a value are never touched.
func (t *TripData) Merge(update TripData) []string {
	dst := reflect.ValueOf(t).Elem()
	src := reflect.ValueOf(update)
	typ := dst.Type()

	var filled []string
	for i := 0; i < dst.NumField(); i++ {
		if !isBlank(dst.Field(i)) || isBlank(src.Field(i)) {
			continue
		}
		f := src.Field(i)
		if f.Kind() == reflect.Slice {
			cp := reflect.MakeSlice(f.Type(), f.Len(), f.Len())
			reflect.Copy(cp, f)
			f = cp
		}
		dst.Field(i).Set(f)
		filled = append(filled, jsonName(typ.Field(i)))
	}
	return filled
}

// Clone returns a deep copy.
func (t TripData) Clone() TripData {
	out := t
	out.TravellerAges = slices.Clone(t.TravellerAges)
	out.Activities = slices.Clone(t.Activities)
	out.MedicalConditionsList = slices.Clone(t.MedicalConditionsList)
	return out
}

// Travellers returns the best known head count.
func (t TripData) Travellers() int {
	if t.NumberOfTravellers > 0 {
		return t.NumberOfTravellers
	}
	return t.NumberOfAdults + t.NumberOfChildren
}

// DestinationName returns the destination, falling back to the arrival country.
func (t TripData) DestinationName() string {
	if t.Destination != "" {
		return t.Destination
	}
	return t.ArrivalCountry
}

// isBlank treats empty strings, zero numbers and empty slices as "not set".
func isBlank(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}

func jsonName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	for i := 0; i < len(tag); i++ {
		if tag[i] == ',' {
			return tag[:i]
		}
	}
	if tag == "" {
		return f.Name
	}
	return tag
}
