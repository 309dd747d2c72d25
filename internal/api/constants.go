package api

// HostAlignment is the boundary, in bytes, every successful host allocation
// is aligned to. Page alignment is what true pinned allocations guarantee;
// the DMA-visible page-locking itself is not reproduced by this fallback.
const HostAlignment = 4096
