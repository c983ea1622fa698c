package component

// GenomeComponent holds inherited genetic state attached to a plant
//
// The world representation entity is replaced at every stage transition, so
// this component must be explicitly carried across; see GenomeSystem.
type GenomeComponent struct {
	Genes string
}
