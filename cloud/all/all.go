// Package all registers every provider implementation with the cloud
// service registry. Import it for effect:
//
//	import _ "github.com/kbukum/cloudkit/cloud/all"
//
// Applications that want a reduced provider set import individual provider
// packages instead.
package all

import (
	_ "github.com/kbukum/cloudkit/cloud/aws"
	_ "github.com/kbukum/cloudkit/cloud/azure"
	_ "github.com/kbukum/cloudkit/cloud/custom"
	_ "github.com/kbukum/cloudkit/cloud/gcp"
	_ "github.com/kbukum/cloudkit/cloud/hetzner"
)
