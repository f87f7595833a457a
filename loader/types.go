package loader

// maxNameBytes bounds a value record's name field, matching locations.h's
// fixed `char name[128]` buffer (127 bytes of content plus a NUL).
const maxNameBytes = 127
