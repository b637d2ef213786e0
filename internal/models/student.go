package models

// Student is a registered learner. SapNo is the college-issued roll number
// students log in with; it is unique across the students collection.
type Student struct {
	ID    string `bson:"_id,omitempty" json:"id"`
	Name  string `bson:"name" json:"name"`
	SapNo string `bson:"sap_no" json:"sap_no"`
}
