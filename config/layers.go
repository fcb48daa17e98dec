package config

import "github.com/yohamta/donburi/ecs"

// Default is the render layer used by every renderer
const Default = ecs.LayerDefault
